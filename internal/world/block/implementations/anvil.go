package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// AnvilBehavior реализует поведение наковальни, тяжелого падающего блока
type AnvilBehavior struct{}

// ID возвращает идентификатор блока
func (b *AnvilBehavior) ID() block.BlockID {
	return block.AnvilBlockID
}

// Name возвращает полное имя блока
func (b *AnvilBehavior) Name() string {
	return "core:anvil"
}

// NeedsTick возвращает false, наковальня реагирует только на изменения
func (b *AnvilBehavior) NeedsTick() bool {
	return false
}

// TickUpdate проверяет опору после отложенного обновления
func (b *AnvilBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnPlace инициализирует износ и проверяет опору
func (b *AnvilBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "damage", 0)
	tryFalling(api, pos)
}

// OnBreak ничего не делает, соседей уведомляет мир
func (b *AnvilBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange проверяет опору при изменении соседа
func (b *AnvilBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
	tryFalling(api, pos)
}

// CreateMetadata создает начальные метаданные для блока
func (b *AnvilBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"damage": 0,
	}
}

// SupportsRegion принимает только области, чья проекция лежит в пределах
// верхушки наковальни. Боковые грани узкой модели опорой не являются.
func (b *AnvilBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	if face != block.FaceUp {
		return false
	}
	const top = 0.125
	return region.MinX >= top && region.MaxX <= 1-top &&
		region.MinZ >= top && region.MaxZ <= 1-top
}
