package physics

import (
	"testing"

	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// sandProfile регистрирует профиль песка на время теста
func sandProfile(t *testing.T, opts map[string]interface{}) *Profile {
	t.Helper()
	profile, err := ParseOptions(opts)
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	RegisterProfile(testSandID, profile)
	t.Cleanup(func() { delete(profiles, testSandID) })
	return profile
}

func newTestTrigger(draw float64) *FallTrigger {
	return NewFallTrigger(&fixedRand{value: draw}, NewSpawnCoordinator())
}

func TestTryFalling_StraightDown(t *testing.T) {
	w := newMockWorld()
	pos := vec.Vec3{X: 3, Y: 8, Z: 3}
	w.SetBlock(pos, testSandID)
	// Под блоком воздух

	sandProfile(t, map[string]interface{}{})
	trigger := newTestTrigger(0.99)

	if !trigger.TryFalling(w, pos) {
		t.Fatal("Блок без опоры должен начать падение вниз")
	}

	// Спаун отложен: до тика сущности нет
	if len(w.spawns) != 0 {
		t.Fatal("Спаун не должен происходить в момент триггера")
	}

	w.runTick()
	if len(w.spawns) != 1 {
		t.Fatalf("Ожидался один спаун, получено %d", len(w.spawns))
	}
	spawn := w.spawns[0]
	if spawn.Direction != (vec.Vec3{Y: -1}) {
		t.Errorf("Ожидалось направление вниз, получено %v", spawn.Direction)
	}
	if spawn.BlockID != testSandID {
		t.Errorf("Ожидалась идентичность %d, получено %d", testSandID, spawn.BlockID)
	}
	if w.GetBlockID(pos) != testAirID {
		t.Error("Статический блок должен быть удален при спауне")
	}
}

func TestTryFalling_NonAuthoritative(t *testing.T) {
	w := newMockWorld()
	w.authoritative = false
	pos := vec.Vec3{X: 3, Y: 8, Z: 3}
	w.SetBlock(pos, testSandID)

	sandProfile(t, map[string]interface{}{})
	trigger := newTestTrigger(0.0)

	if trigger.TryFalling(w, pos) {
		t.Error("Неавторитетное представление не должно запускать падение")
	}
	if len(w.deferred) != 0 {
		t.Error("Неавторитетный вызов не должен планировать задачи")
	}
}

func TestTryFalling_AttachedStable(t *testing.T) {
	// fallSideways=false и блок закреплен: падения нет при любом
	// значении глобального флага
	for _, enabled := range []bool{true, false} {
		w := newMockWorld()
		w.fallsEnabled = enabled
		pos := vec.Vec3{X: 3, Y: 8, Z: 3}
		w.SetBlock(pos, testSandID)
		w.SetBlock(pos.Down(), testSolidID)

		sandProfile(t, map[string]interface{}{})
		trigger := newTestTrigger(0.0)

		if trigger.TryFalling(w, pos) {
			t.Errorf("Закрепленный блок не должен падать (флаг=%v)", enabled)
		}
		w.runTick()
		if len(w.spawns) != 0 {
			t.Errorf("Спаунов быть не должно (флаг=%v)", enabled)
		}
	}
}

func TestTryFalling_GloballyDisabled(t *testing.T) {
	w := newMockWorld()
	w.fallsEnabled = false
	pos := vec.Vec3{X: 3, Y: 8, Z: 3}
	w.SetBlock(pos, testSandID)
	// Опоры нет, но подсистема выключена конфигурацией мира

	sandProfile(t, map[string]interface{}{})
	trigger := newTestTrigger(0.0)

	if trigger.TryFalling(w, pos) {
		t.Error("Выключенная подсистема не должна запускать падение")
	}
	w.runTick()
	if len(w.spawns) != 0 {
		t.Error("Спаунов быть не должно при выключенной подсистеме")
	}
}

func TestTryFalling_SidewaysChance(t *testing.T) {
	setup := func() (*mockWorld, vec.Vec3) {
		w := newMockWorld()
		pos := vec.Vec3{X: 3, Y: 8, Z: 3}
		w.SetBlock(pos, testSandID)
		// Прямо вниз занято, слева (запад) свободно вместе с ячейкой ниже
		w.SetBlock(pos.Down(), testSolidID)
		for _, f := range []block.Face{block.FaceEast, block.FaceNorth, block.FaceSouth} {
			side := pos.Add(f.Offset())
			w.SetBlock(side, testSolidID)
		}
		return w, pos
	}

	sandProfile(t, map[string]interface{}{
		"fallSideways":       true,
		"fallSidewaysChance": 0.3,
	})

	// Розыгрыш 0.29 < 0.3 — сползание срабатывает
	w, pos := setup()
	trigger := newTestTrigger(0.29)
	if !trigger.TryFalling(w, pos) {
		t.Fatal("Розыгрыш 0.29 при шансе 0.3 должен запускать сползание")
	}
	w.runTick()
	if len(w.spawns) != 1 {
		t.Fatalf("Ожидался один спаун, получено %d", len(w.spawns))
	}
	if w.spawns[0].Direction != (block.FaceWest.Offset()) {
		t.Errorf("Ожидалось направление на запад, получено %v", w.spawns[0].Direction)
	}

	// Розыгрыш 0.31 >= 0.3 — блок остается на месте
	w, pos = setup()
	trigger = newTestTrigger(0.31)
	if trigger.TryFalling(w, pos) {
		t.Error("Розыгрыш 0.31 при шансе 0.3 не должен запускать сползание")
	}
	w.runTick()
	if len(w.spawns) != 0 {
		t.Error("Спаунов быть не должно при неудачном розыгрыше")
	}
}

func TestTryFalling_SidewaysNeedsFreeCells(t *testing.T) {
	w := newMockWorld()
	pos := vec.Vec3{X: 3, Y: 8, Z: 3}
	w.SetBlock(pos, testSandID)
	w.SetBlock(pos.Down(), testSolidID)
	// Все горизонтальные соседи заняты
	for _, f := range block.HorizontalFaces() {
		w.SetBlock(pos.Add(f.Offset()), testSolidID)
	}

	sandProfile(t, map[string]interface{}{
		"fallSideways":       true,
		"fallSidewaysChance": 1.0,
	})
	trigger := newTestTrigger(0.0)

	if trigger.TryFalling(w, pos) {
		t.Error("Без свободных соседних ячеек сползание невозможно")
	}
}

func TestTryFalling_SidewaysTieBreakOrder(t *testing.T) {
	w := newMockWorld()
	pos := vec.Vec3{X: 3, Y: 8, Z: 3}
	w.SetBlock(pos, testSandID)
	w.SetBlock(pos.Down(), testSolidID)
	// Запад занят, восток и юг свободны: фиксированный порядок выбирает восток
	w.SetBlock(pos.Add(block.FaceWest.Offset()), testSolidID)

	sandProfile(t, map[string]interface{}{
		"fallSideways":       true,
		"fallSidewaysChance": 1.0,
	})
	trigger := newTestTrigger(0.0)

	if !trigger.TryFalling(w, pos) {
		t.Fatal("Сползание должно сработать при свободном востоке")
	}
	w.runTick()
	if len(w.spawns) != 1 {
		t.Fatalf("Ожидался один спаун, получено %d", len(w.spawns))
	}
	if w.spawns[0].Direction != (block.FaceEast.Offset()) {
		t.Errorf("Фиксированный порядок должен выбрать восток, получено %v", w.spawns[0].Direction)
	}
}

func TestTryFalling_UnknownBlock(t *testing.T) {
	w := newMockWorld()
	pos := vec.Vec3{X: 3, Y: 8, Z: 3}
	w.SetBlock(pos, testSolidID) // У testSolid нет профиля физики

	trigger := newTestTrigger(0.0)
	if trigger.TryFalling(w, pos) {
		t.Error("Блок без профиля физики не должен падать")
	}
}
