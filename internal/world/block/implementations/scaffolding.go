package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// ScaffoldingBehavior реализует поведение строительных лесов.
// Леса крепятся к соседним лесам по боковым граням, а без опоры
// падают, соскальзывая в сторону.
type ScaffoldingBehavior struct{}

// ID возвращает идентификатор блока
func (b *ScaffoldingBehavior) ID() block.BlockID {
	return block.ScaffoldingBlockID
}

// Name возвращает полное имя блока
func (b *ScaffoldingBehavior) Name() string {
	return "core:scaffolding"
}

// NeedsTick возвращает false, леса реагируют только на изменения
func (b *ScaffoldingBehavior) NeedsTick() bool {
	return false
}

// TickUpdate проверяет опору после отложенного обновления
func (b *ScaffoldingBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnPlace проверяет опору сразу после установки
func (b *ScaffoldingBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnBreak ничего не делает, соседей уведомляет мир
func (b *ScaffoldingBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange проверяет опору при изменении соседа
func (b *ScaffoldingBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
	tryFalling(api, pos)
}

// CreateMetadata создает начальные метаданные для блока
func (b *ScaffoldingBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}
