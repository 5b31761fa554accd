package physics

import (
	"github.com/annel0/voxel-physics/internal/pattern"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// ReasonRequiresSolidGround — символьный код отказа установки.
// Это результат правила, а не ошибка: потребляется логикой установки и UI.
const ReasonRequiresSolidGround = "requires solid ground"

// CanPlace проверяет, можно ли установить блок с правилом rule в позицию pos.
// Проверяется область крепления нижней грани против блока под pos.
func CanPlace(api block.BlockAPI, pos vec.Vec3, rule *StabilityRule) (bool, string) {
	// Статический атрибут типа: установка без опоры разрешена безусловно
	if rule.AllowsUnstable() {
		return true, ""
	}

	if faceSupported(api, pos, block.FaceDown, rule) {
		return true, ""
	}
	return false, ReasonRequiresSolidGround
}

// IsAttached проверяет, закреплен ли блок в позиции pos хотя бы по одной
// из разрешенных граней. Используется, когда возможно боковое сползание.
func IsAttached(api block.BlockAPI, pos vec.Vec3, rule *StabilityRule) bool {
	for _, f := range rule.AttachableFaces() {
		if faceSupported(api, pos, f, rule) {
			return true
		}
	}
	return false
}

// faceSupported проверяет одну грань: сосед за гранью либо совпадает
// с шаблоном исключения, либо принимает область крепления как опору.
func faceSupported(api block.BlockAPI, pos vec.Vec3, f block.Face, rule *StabilityRule) bool {
	neighborPos := pos.Add(f.Offset())
	neighborID := api.GetBlockID(neighborPos)

	behavior, exists := block.Get(neighborID)
	if !exists {
		return false
	}

	if pattern.MatchAny(rule.Exceptions(), behavior.Name()) {
		return true
	}

	surface, ok := behavior.(block.SupportSurface)
	if !ok {
		return false
	}

	// Сосед отвечает за свою грань, обращенную к проверяемому блоку
	return surface.SupportsRegion(api, neighborPos, f.Opposite(), rule.Region(f))
}

// IsReplaceable проверяет, может ли падающий блок занять ячейку pos
func IsReplaceable(api block.BlockAPI, pos vec.Vec3) bool {
	id := api.GetBlockID(pos)
	behavior, exists := block.Get(id)
	if !exists {
		return false
	}
	r, ok := behavior.(block.Replaceable)
	return ok && r.ReplaceableBy(api, pos)
}
