package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// ConcreteBehavior реализует поведение затвердевшего бетона
type ConcreteBehavior struct{}

// ID возвращает идентификатор блока
func (b *ConcreteBehavior) ID() block.BlockID {
	return block.ConcreteBlockID
}

// Name возвращает полное имя блока
func (b *ConcreteBehavior) Name() string {
	return "core:concrete"
}

// NeedsTick возвращает false, бетон статичен
func (b *ConcreteBehavior) NeedsTick() bool {
	return false
}

// TickUpdate ничего не делает для бетона
func (b *ConcreteBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
}

// OnPlace инициализирует прочность бетона
func (b *ConcreteBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "hardness", 12)
}

// OnBreak ничего не делает для бетона
func (b *ConcreteBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange ничего не делает, бетон не зависит от соседей
func (b *ConcreteBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
}

// CreateMetadata создает начальные метаданные для блока
func (b *ConcreteBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"hardness": 12,
	}
}

// SupportsRegion сообщает, что бетон несет любую область на любой грани
func (b *ConcreteBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return true
}
