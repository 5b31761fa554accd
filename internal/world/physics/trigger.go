package physics

import (
	"math/rand"

	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// Rand — источник равномерных значений [0,1) для вероятностных решений.
// Выделен в интерфейс, чтобы тесты могли подставить фиксированный розыгрыш.
type Rand interface {
	Float64() float64
}

// FallTrigger принимает решение о падении блока. Вызывается при установке
// блока и при изменении любого из его соседей.
type FallTrigger struct {
	rand        Rand
	coordinator *SpawnCoordinator
}

// NewFallTrigger создает триггер падения. При r == nil используется math/rand.
func NewFallTrigger(r Rand, coordinator *SpawnCoordinator) *FallTrigger {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	return &FallTrigger{rand: r, coordinator: coordinator}
}

// TryFalling проверяет опору блока в позиции pos и при ее отсутствии
// планирует превращение в падающую сущность. Возвращает true, если падение
// запланировано. Сам спаун происходит на следующем тике через координатор.
func (t *FallTrigger) TryFalling(w World, pos vec.Vec3) bool {
	// Только авторитетный хост симуляции меняет состояние мира
	if !w.IsAuthoritative() {
		return false
	}

	id := w.GetBlockID(pos)
	profile, ok := ProfileFor(id)
	if !ok {
		return false
	}

	// Без бокового сползания закрепленный блок стабилен
	if !profile.Fall.FallSideways && IsAttached(w, pos, profile.Rule) {
		return false
	}

	// Глобальный флаг мира отключает всю подсистему
	if !w.FallingBlocksEnabled() {
		return false
	}

	// Прямое падение предпочтительнее: ячейка под блоком свободна
	if IsReplaceable(w, pos.Down()) {
		fallsTriggered.WithLabelValues("down").Inc()
		t.coordinator.Schedule(w, pos, id, vec.Vec3{Y: -1}, profile.Fall)
		return true
	}

	if !profile.Fall.FallSideways {
		return false
	}

	// Один равномерный розыгрыш на решение о боковом сползании
	if t.rand.Float64() >= profile.Fall.FallSidewaysChance {
		return false
	}

	// Кандидат — горизонтальный сосед, у которого свободны сама ячейка
	// и ячейка под ней. Перебор в фиксированном порядке (запад, восток,
	// север, юг), побеждает первый подходящий: детерминизм важнее
	// равновероятности.
	for _, f := range block.HorizontalFaces() {
		side := pos.Add(f.Offset())
		if IsReplaceable(w, side) && IsReplaceable(w, side.Down()) {
			fallsTriggered.WithLabelValues("sideways").Inc()
			t.coordinator.Schedule(w, pos, id, f.Offset(), profile.Fall)
			return true
		}
	}

	return false
}
