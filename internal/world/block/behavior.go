package block

import (
	"github.com/annel0/voxel-physics/internal/vec"
)

type Metadata map[string]interface{}

// BlockBehavior определяет поведение блока
type BlockBehavior interface {
	ID() BlockID
	// Name возвращает полное имя блока вида "core:sand".
	// Имя используется для сопоставления с шаблонами исключений.
	Name() string
	NeedsTick() bool
	TickUpdate(api BlockAPI, pos vec.Vec3)
	OnPlace(api BlockAPI, pos vec.Vec3)
	OnBreak(api BlockAPI, pos vec.Vec3)
	// OnNeighborChange вызывается при изменении любого из шести соседей.
	// changed — позиция изменившегося соседа.
	OnNeighborChange(api BlockAPI, pos vec.Vec3, changed vec.Vec3)
	CreateMetadata() Metadata
}

// SupportSurface — способность блока служить опорой для соседей.
// Блок, не реализующий интерфейс, не поддерживает никакие области.
type SupportSurface interface {
	// SupportsRegion проверяет, принимает ли блок в позиции pos область
	// region, прижатую к его грани face, как действительную опору.
	SupportsRegion(api BlockAPI, pos vec.Vec3, face Face, region Box) bool
}

// Replaceable — способность блока быть замещенным (воздух, жидкости).
// Падающий блок может занять только замещаемую ячейку.
type Replaceable interface {
	ReplaceableBy(api BlockAPI, pos vec.Vec3) bool
}
