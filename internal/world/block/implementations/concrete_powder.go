package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// ConcretePowderBehavior реализует поведение цементного порошка.
// Порошок падает без опоры и после приземления превращается в бетон.
type ConcretePowderBehavior struct{}

// ID возвращает идентификатор блока
func (b *ConcretePowderBehavior) ID() block.BlockID {
	return block.ConcretePowderBlockID
}

// Name возвращает полное имя блока
func (b *ConcretePowderBehavior) Name() string {
	return "core:concrete_powder"
}

// NeedsTick возвращает false, порошок реагирует только на изменения
func (b *ConcretePowderBehavior) NeedsTick() bool {
	return false
}

// TickUpdate проверяет опору после отложенного обновления
func (b *ConcretePowderBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnPlace проверяет опору сразу после установки
func (b *ConcretePowderBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnBreak ничего не делает, соседей уведомляет мир
func (b *ConcretePowderBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange проверяет опору при изменении соседа
func (b *ConcretePowderBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
	tryFalling(api, pos)
}

// CreateMetadata создает начальные метаданные для блока
func (b *ConcretePowderBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

// SupportsRegion сообщает, что лежащий порошок несет любую область
func (b *ConcretePowderBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return true
}
