package physics

import (
	"github.com/annel0/voxel-physics/internal/world/block"
)

// Регистр профилей физики по типам блоков. Заполняется один раз при
// регистрации блоков; профиль разделяется всеми экземплярами типа.
var profiles = make(map[block.BlockID]*Profile)

// RegisterProfile привязывает профиль физики к типу блока
func RegisterProfile(id block.BlockID, p *Profile) {
	profiles[id] = p
}

// ProfileFor возвращает профиль физики для типа блока
func ProfileFor(id block.BlockID) (*Profile, bool) {
	p, exists := profiles[id]
	return p, exists
}
