package implementations

import (
	"math/rand"

	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// GrassBehavior реализует поведение блока травы
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает полное имя блока
func (b *GrassBehavior) Name() string {
	return "core:grass"
}

// NeedsTick возвращает true, так как трава растет
func (b *GrassBehavior) NeedsTick() bool {
	return true
}

// TickUpdate обновляет состояние травы, постепенный рост и распространение
func (b *GrassBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	growth, ok := api.GetBlockMetadata(pos, "growth").(int)
	if !ok {
		growth = 0
		api.SetBlockMetadata(pos, "growth", growth)
		return
	}

	// Шанс роста 10% каждый тик, максимальный рост 5
	if growth < 5 && rand.Float32() < 0.1 {
		growth++
		api.SetBlockMetadata(pos, "growth", growth)
	}

	// Выросшая трава пытается распространиться на соседнюю землю
	if growth >= 3 && rand.Float32() < 0.05 {
		sides := block.HorizontalFaces()
		targetPos := pos.Add(sides[rand.Intn(len(sides))].Offset())

		if api.GetBlockID(targetPos) == block.DirtBlockID {
			api.SetBlock(targetPos, block.GrassBlockID)
			api.SetBlockMetadata(targetPos, "growth", 0)
		}
	}
}

// OnPlace инициализирует блок при установке
func (b *GrassBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "growth", 0)
}

// OnBreak вызывается при разрушении блока
func (b *GrassBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange превращает траву обратно в землю под сплошным блоком
func (b *GrassBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
	if !changed.Equals(pos.Up()) {
		return
	}
	above := api.GetBlockID(pos.Up())
	if above != block.AirBlockID && above != block.WaterBlockID {
		api.SetBlock(pos, block.DirtBlockID)
	}
}

// CreateMetadata создает начальные метаданные для блока
func (b *GrassBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"growth": 0,
	}
}

// SupportsRegion сообщает, что трава несет любую область на любой грани
func (b *GrassBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return true
}
