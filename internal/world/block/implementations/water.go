package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// WaterBehavior реализует поведение блока воды
type WaterBehavior struct{}

// ID возвращает идентификатор блока
func (b *WaterBehavior) ID() block.BlockID {
	return block.WaterBlockID
}

// Name возвращает полное имя блока
func (b *WaterBehavior) Name() string {
	return "core:water"
}

// NeedsTick возвращает true, так как вода течет
func (b *WaterBehavior) NeedsTick() bool {
	return true
}

// TickUpdate обновляет состояние воды, растекание вниз и в стороны
func (b *WaterBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	level, ok := api.GetBlockMetadata(pos, "level").(int)
	if !ok {
		level = 7 // Максимальный уровень воды
		api.SetBlockMetadata(pos, "level", level)
		return
	}

	if level <= 0 {
		return
	}

	// Вода в первую очередь стекает вниз без потери уровня
	below := pos.Down()
	if api.GetBlockID(below) == block.AirBlockID {
		api.SetBlock(below, block.WaterBlockID)
		api.SetBlockMetadata(below, "level", level)
		return
	}

	for _, f := range block.HorizontalFaces() {
		side := pos.Add(f.Offset())
		targetID := api.GetBlockID(side)

		// Воздух заполняется водой с уменьшенным уровнем
		if targetID == block.AirBlockID {
			api.SetBlock(side, block.WaterBlockID)
			api.SetBlockMetadata(side, "level", level-1)
			continue
		}

		// Соседняя вода выравнивает уровень
		if targetID == block.WaterBlockID {
			targetLevel, ok := api.GetBlockMetadata(side, "level").(int)
			if !ok {
				continue
			}
			if level > targetLevel+1 {
				newLevel := (level + targetLevel) / 2
				api.SetBlockMetadata(pos, "level", newLevel)
				api.SetBlockMetadata(side, "level", newLevel)
			}
		}
	}
}

// OnPlace инициализирует блок при установке
func (b *WaterBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "level", 7) // Максимальный уровень воды
}

// OnBreak вызывается при разрушении блока
func (b *WaterBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange будит воду, чтобы она продолжила растекаться
func (b *WaterBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
	api.ScheduleUpdateOnce(pos)
}

// CreateMetadata создает начальные метаданные для блока
func (b *WaterBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{"level": 7}
}

// ReplaceableBy сообщает, что воду можно заместить падающим блоком
func (b *WaterBehavior) ReplaceableBy(api block.BlockAPI, pos vec.Vec3) bool {
	return true
}
