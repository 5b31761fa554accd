package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// SandBehavior реализует поведение блока песка, падающего без опоры
type SandBehavior struct{}

// ID возвращает идентификатор блока
func (b *SandBehavior) ID() block.BlockID {
	return block.SandBlockID
}

// Name возвращает полное имя блока
func (b *SandBehavior) Name() string {
	return "core:sand"
}

// NeedsTick возвращает false, песок реагирует только на изменения
func (b *SandBehavior) NeedsTick() bool {
	return false
}

// TickUpdate проверяет опору после отложенного обновления
func (b *SandBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnPlace проверяет опору сразу после установки
func (b *SandBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnBreak ничего не делает, соседей уведомляет мир
func (b *SandBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange проверяет опору при изменении соседа
func (b *SandBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
	tryFalling(api, pos)
}

// CreateMetadata создает начальные метаданные для блока
func (b *SandBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

// SupportsRegion сообщает, что лежащий песок несет любую область
func (b *SandBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return true
}
