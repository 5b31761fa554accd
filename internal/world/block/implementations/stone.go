package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает полное имя блока
func (b *StoneBehavior) Name() string {
	return "core:stone"
}

// NeedsTick возвращает false, камень статичен
func (b *StoneBehavior) NeedsTick() bool {
	return false
}

// TickUpdate ничего не делает для камня
func (b *StoneBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	// Камень не обновляется каждый тик
}

// OnPlace инициализирует блок при установке
func (b *StoneBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	// Инициализируем прочность камня
	api.SetBlockMetadata(pos, "hardness", 10)
}

// OnBreak вызывается при разрушении блока
func (b *StoneBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange ничего не делает, камень не зависит от соседей
func (b *StoneBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
}

// CreateMetadata создает начальные метаданные для блока
func (b *StoneBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"hardness": 10,
	}
}

// SupportsRegion сообщает, что камень несет любую область на любой грани
func (b *StoneBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return true
}
