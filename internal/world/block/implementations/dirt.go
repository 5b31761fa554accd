package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

// ID возвращает идентификатор блока
func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

// Name возвращает полное имя блока
func (b *DirtBehavior) Name() string {
	return "core:dirt"
}

// NeedsTick возвращает false, земля статична
func (b *DirtBehavior) NeedsTick() bool {
	return false
}

// TickUpdate ничего не делает для земли
func (b *DirtBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
}

// OnPlace ничего не делает для земли
func (b *DirtBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
}

// OnBreak ничего не делает для земли
func (b *DirtBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange ничего не делает для земли
func (b *DirtBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
}

// CreateMetadata создает начальные метаданные для блока
func (b *DirtBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

// SupportsRegion сообщает, что земля несет любую область на любой грани
func (b *DirtBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return true
}
