package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// AirBehavior реализует поведение пустого блока
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает полное имя блока
func (b *AirBehavior) Name() string {
	return "core:air"
}

// NeedsTick возвращает false, воздух статичен
func (b *AirBehavior) NeedsTick() bool {
	return false
}

// TickUpdate ничего не делает для воздуха
func (b *AirBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
}

// OnPlace ничего не делает для воздуха
func (b *AirBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
}

// OnBreak ничего не делает для воздуха
func (b *AirBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
}

// OnNeighborChange ничего не делает для воздуха
func (b *AirBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {
}

// CreateMetadata создает начальные метаданные для блока
func (b *AirBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

// ReplaceableBy сообщает, что воздух можно заместить падающим блоком
func (b *AirBehavior) ReplaceableBy(api block.BlockAPI, pos vec.Vec3) bool {
	return true
}
