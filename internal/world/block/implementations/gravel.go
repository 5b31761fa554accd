package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// GravelBehavior реализует поведение гравия, падающего и соскальзывающего вбок
type GravelBehavior struct{}

// ID возвращает идентификатор блока
func (b *GravelBehavior) ID() block.BlockID {
	return block.GravelBlockID
}

// Name возвращает полное имя блока
func (b *GravelBehavior) Name() string {
	return "core:gravel"
}

// NeedsTick возвращает false, гравий реагирует только на изменения
func (b *GravelBehavior) NeedsTick() bool {
	return false
}

// TickUpdate проверяет опору после отложенного обновления
func (b *GravelBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnPlace проверяет опору сразу после установки
func (b *GravelBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	tryFalling(api, pos)
}

// OnBreak ничего не делает, соседей уведомляет мир
func (b *GravelBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange проверяет опору при изменении соседа
func (b *GravelBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
	tryFalling(api, pos)
}

// CreateMetadata создает начальные метаданные для блока
func (b *GravelBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

// SupportsRegion сообщает, что лежащий гравий несет любую область
func (b *GravelBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return true
}
