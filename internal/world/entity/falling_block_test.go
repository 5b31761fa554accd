package entity

import (
	"testing"

	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
	_ "github.com/annel0/voxel-physics/internal/world/block/implementations"
	"github.com/annel0/voxel-physics/internal/world/physics"
)

// mockEntityAPI реализует EntityAPI поверх карты блоков
type mockEntityAPI struct {
	em       *EntityManager
	blocks   map[vec.Vec3]block.BlockID
	metadata map[vec.Vec3]map[string]interface{}
	settled  []vec.Vec3
}

func newMockEntityAPI(em *EntityManager) *mockEntityAPI {
	return &mockEntityAPI{
		em:       em,
		blocks:   make(map[vec.Vec3]block.BlockID),
		metadata: make(map[vec.Vec3]map[string]interface{}),
	}
}

func (m *mockEntityAPI) GetBlockID(pos vec.Vec3) block.BlockID {
	if id, exists := m.blocks[pos]; exists {
		return id
	}
	return block.AirBlockID
}

func (m *mockEntityAPI) SetBlock(pos vec.Vec3, id block.BlockID) {
	m.blocks[pos] = id
}

func (m *mockEntityAPI) RemoveBlock(pos vec.Vec3) {
	m.blocks[pos] = block.AirBlockID
	delete(m.metadata, pos)
}

func (m *mockEntityAPI) GetBlockMetadata(pos vec.Vec3, key string) interface{} {
	if metadata, exists := m.metadata[pos]; exists {
		return metadata[key]
	}
	return nil
}

func (m *mockEntityAPI) SetBlockMetadata(pos vec.Vec3, key string, value interface{}) {
	if _, exists := m.metadata[pos]; !exists {
		m.metadata[pos] = make(map[string]interface{})
	}
	m.metadata[pos][key] = value
}

func (m *mockEntityAPI) CaptureBlockMetadata(pos vec.Vec3) map[string]interface{} {
	copied := make(map[string]interface{})
	for k, v := range m.metadata[pos] {
		copied[k] = v
	}
	return copied
}

func (m *mockEntityAPI) ScheduleUpdateOnce(pos vec.Vec3)     {}
func (m *mockEntityAPI) TriggerNeighborUpdates(pos vec.Vec3) {}
func (m *mockEntityAPI) Defer(task func())                   {}
func (m *mockEntityAPI) IsAuthoritative() bool               { return true }
func (m *mockEntityAPI) FallingBlocksEnabled() bool          { return true }

func (m *mockEntityAPI) GetEntitiesInRange(center vec.Vec3, radius float64) []*Entity {
	return m.em.GetEntitiesInRange(center, radius)
}

func (m *mockEntityAPI) DespawnEntity(entityID uint64) {
	m.em.DespawnEntity(entityID, m)
}

func (m *mockEntityAPI) NotifySettled(e *Entity, landing vec.Vec3) {
	m.settled = append(m.settled, landing)
}

func newTestManager() *EntityManager {
	em := NewEntityManager()
	em.RegisterDefaultBehaviors()
	return em
}

// runUntilSettled прогоняет симуляцию до приземления или лимита шагов
func runUntilSettled(t *testing.T, em *EntityManager, api *mockEntityAPI, steps int) {
	t.Helper()
	for i := 0; i < steps; i++ {
		em.Update(api, 1.0/20.0)
		if em.Count() == 0 {
			return
		}
	}
	t.Fatalf("Сущность не приземлилась за %d шагов", steps)
}

func TestFallingBlock_LandsOnFirstOccupiedCell(t *testing.T) {
	em := newTestManager()
	api := newMockEntityAPI(em)

	// Камень на Y=5, спаун песка на Y=10
	api.SetBlock(vec.Vec3{X: 0, Y: 5, Z: 0}, block.StoneBlockID)

	origin := vec.Vec3{X: 0, Y: 10, Z: 0}
	em.SpawnFallingBlock(physics.FallingBlockSpawn{
		BlockID:   block.SandBlockID,
		Pos:       origin,
		Direction: vec.Vec3{Y: -1},
		Origin:    origin,
	}, api)

	runUntilSettled(t, em, api, 200)

	landing := vec.Vec3{X: 0, Y: 6, Z: 0}
	if api.GetBlockID(landing) != block.SandBlockID {
		t.Errorf("Песок должен приземлиться на %v, там %v", landing, api.GetBlockID(landing))
	}
	if len(api.settled) != 1 || !api.settled[0].Equals(landing) {
		t.Errorf("Ожидалось одно уведомление о приземлении в %v, получено %v", landing, api.settled)
	}
}

func TestFallingBlock_CarriesPayloadToLanding(t *testing.T) {
	em := newTestManager()
	api := newMockEntityAPI(em)

	api.SetBlock(vec.Vec3{X: 0, Y: 0, Z: 0}, block.StoneBlockID)

	origin := vec.Vec3{X: 0, Y: 3, Z: 0}
	em.SpawnFallingBlock(physics.FallingBlockSpawn{
		BlockID:   block.SandBlockID,
		Pos:       origin,
		Direction: vec.Vec3{Y: -1},
		Payload:   map[string]interface{}{"color": "red"},
		Origin:    origin,
	}, api)

	runUntilSettled(t, em, api, 200)

	landing := vec.Vec3{X: 0, Y: 1, Z: 0}
	if got := api.GetBlockMetadata(landing, "color"); got != "red" {
		t.Errorf("Метаданные должны перенестись в приземлившийся блок, получено %v", got)
	}
}

func TestFallingBlock_SidewaysShiftThenFall(t *testing.T) {
	em := newTestManager()
	api := newMockEntityAPI(em)

	// Опора под исходной ячейкой и под соседней на два ниже
	origin := vec.Vec3{X: 0, Y: 10, Z: 0}
	api.SetBlock(origin.Down(), block.StoneBlockID)
	api.SetBlock(vec.Vec3{X: -1, Y: 5, Z: 0}, block.StoneBlockID)

	em.SpawnFallingBlock(physics.FallingBlockSpawn{
		BlockID:   block.GravelBlockID,
		Pos:       origin,
		Direction: vec.Vec3{X: -1},
		Origin:    origin,
	}, api)

	runUntilSettled(t, em, api, 200)

	landing := vec.Vec3{X: -1, Y: 6, Z: 0}
	if api.GetBlockID(landing) != block.GravelBlockID {
		t.Errorf("Гравий должен соскользнуть и приземлиться на %v, там %v", landing, api.GetBlockID(landing))
	}
}

func TestHasFallingBlockAt_MatchesOriginOnly(t *testing.T) {
	em := newTestManager()
	api := newMockEntityAPI(em)

	origin := vec.Vec3{X: 4, Y: 20, Z: 4}
	em.SpawnFallingBlock(physics.FallingBlockSpawn{
		BlockID:   block.SandBlockID,
		Pos:       origin,
		Direction: vec.Vec3{Y: -1},
		Origin:    origin,
	}, api)

	if !em.HasFallingBlockAt(origin, physics.DuplicateSearchRadius) {
		t.Error("Сущность с совпадающей точкой происхождения должна быть найдена")
	}
	other := vec.Vec3{X: 5, Y: 20, Z: 4}
	if em.HasFallingBlockAt(other, physics.DuplicateSearchRadius) {
		t.Error("Сущность с другой точкой происхождения не должна считаться дублем")
	}
}
