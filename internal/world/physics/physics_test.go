package physics

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// Тестовые типы блоков регистрируются в верхнем диапазоне ID,
// чтобы не пересекаться с боевыми блоками.
const (
	testAirID     block.BlockID = 60000
	testSolidID   block.BlockID = 60001
	testSandID    block.BlockID = 60002
	testPillarID  block.BlockID = 60003 // Узкая опора: принимает только области внутри своей колонны
	testVariantID block.BlockID = 60004
)

// testAirBehavior — замещаемый блок без опорной поверхности
type testAirBehavior struct{}

func (b *testAirBehavior) ID() block.BlockID                              { return testAirID }
func (b *testAirBehavior) Name() string                                   { return "test:air" }
func (b *testAirBehavior) NeedsTick() bool                                { return false }
func (b *testAirBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3)    {}
func (b *testAirBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testAirBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testAirBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {}
func (b *testAirBehavior) CreateMetadata() block.Metadata                 { return block.Metadata{} }
func (b *testAirBehavior) ReplaceableBy(api block.BlockAPI, pos vec.Vec3) bool { return true }

// testSolidBehavior — полный блок, принимающий любую область на любой грани
type testSolidBehavior struct{}

func (b *testSolidBehavior) ID() block.BlockID                              { return testSolidID }
func (b *testSolidBehavior) Name() string                                   { return "test:solid" }
func (b *testSolidBehavior) NeedsTick() bool                                { return false }
func (b *testSolidBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3)    {}
func (b *testSolidBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testSolidBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testSolidBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {}
func (b *testSolidBehavior) CreateMetadata() block.Metadata                 { return block.Metadata{} }
func (b *testSolidBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return true
}

// testSandBehavior — сыпучий блок без собственных способностей
type testSandBehavior struct{}

func (b *testSandBehavior) ID() block.BlockID                              { return testSandID }
func (b *testSandBehavior) Name() string                                   { return "test:sand" }
func (b *testSandBehavior) NeedsTick() bool                                { return false }
func (b *testSandBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3)    {}
func (b *testSandBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testSandBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testSandBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {}
func (b *testSandBehavior) CreateMetadata() block.Metadata                 { return block.Metadata{} }

// testPillarBehavior — опора, принимающая только области внутри центральной колонны
type testPillarBehavior struct{}

var pillarColumn = block.Box{MinX: 0.25, MinY: 0, MinZ: 0.25, MaxX: 0.75, MaxY: 1, MaxZ: 0.75}

func (b *testPillarBehavior) ID() block.BlockID                              { return testPillarID }
func (b *testPillarBehavior) Name() string                                   { return "test:pillar" }
func (b *testPillarBehavior) NeedsTick() bool                                { return false }
func (b *testPillarBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3)    {}
func (b *testPillarBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testPillarBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testPillarBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {}
func (b *testPillarBehavior) CreateMetadata() block.Metadata                 { return block.Metadata{} }
func (b *testPillarBehavior) SupportsRegion(api block.BlockAPI, pos vec.Vec3, face block.Face, region block.Box) bool {
	return pillarColumn.Contains(block.Box{
		MinX: region.MinX, MinY: 0, MinZ: region.MinZ,
		MaxX: region.MaxX, MaxY: 1, MaxZ: region.MaxZ,
	})
}

// testVariantBehavior — затвердевший вариант для подстановки после падения
type testVariantBehavior struct{}

func (b *testVariantBehavior) ID() block.BlockID                              { return testVariantID }
func (b *testVariantBehavior) Name() string                                   { return "test:packed_sand" }
func (b *testVariantBehavior) NeedsTick() bool                                { return false }
func (b *testVariantBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3)    {}
func (b *testVariantBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testVariantBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3)       {}
func (b *testVariantBehavior) OnNeighborChange(api block.BlockAPI, pos vec.Vec3, changed vec.Vec3) {}
func (b *testVariantBehavior) CreateMetadata() block.Metadata                 { return block.Metadata{} }

func init() {
	block.Register(testAirID, &testAirBehavior{})
	block.Register(testSolidID, &testSolidBehavior{})
	block.Register(testSandID, &testSandBehavior{})
	block.Register(testPillarID, &testPillarBehavior{})
	block.Register(testVariantID, &testVariantBehavior{})
}

// mockWorld реализует physics.World для тестирования
type mockWorld struct {
	blocks        map[vec.Vec3]block.BlockID
	metadata      map[vec.Vec3]map[string]interface{}
	deferred      []func()
	authoritative bool
	fallsEnabled  bool
	spawns        []FallingBlockSpawn
	effects       []effectCall
	scheduled     map[vec.Vec3]bool
}

type effectCall struct {
	pos   vec.Vec3
	dust  float64
	sound string
}

func newMockWorld() *mockWorld {
	return &mockWorld{
		blocks:        make(map[vec.Vec3]block.BlockID),
		metadata:      make(map[vec.Vec3]map[string]interface{}),
		authoritative: true,
		fallsEnabled:  true,
		scheduled:     make(map[vec.Vec3]bool),
	}
}

func (m *mockWorld) GetBlockID(pos vec.Vec3) block.BlockID {
	if id, exists := m.blocks[pos]; exists {
		return id
	}
	return testAirID
}

func (m *mockWorld) SetBlock(pos vec.Vec3, id block.BlockID) {
	m.blocks[pos] = id
}

func (m *mockWorld) RemoveBlock(pos vec.Vec3) {
	m.blocks[pos] = testAirID
	delete(m.metadata, pos)
}

func (m *mockWorld) GetBlockMetadata(pos vec.Vec3, key string) interface{} {
	if md, exists := m.metadata[pos]; exists {
		return md[key]
	}
	return nil
}

func (m *mockWorld) SetBlockMetadata(pos vec.Vec3, key string, value interface{}) {
	if _, exists := m.metadata[pos]; !exists {
		m.metadata[pos] = make(map[string]interface{})
	}
	m.metadata[pos][key] = value
}

func (m *mockWorld) CaptureBlockMetadata(pos vec.Vec3) map[string]interface{} {
	result := make(map[string]interface{})
	for k, v := range m.metadata[pos] {
		result[k] = v
	}
	return result
}

func (m *mockWorld) ScheduleUpdateOnce(pos vec.Vec3) {
	m.scheduled[pos] = true
}

func (m *mockWorld) TriggerNeighborUpdates(pos vec.Vec3) {
	for _, f := range block.AllFaces() {
		m.ScheduleUpdateOnce(pos.Add(f.Offset()))
	}
}

func (m *mockWorld) Defer(task func()) {
	m.deferred = append(m.deferred, task)
}

func (m *mockWorld) IsAuthoritative() bool        { return m.authoritative }
func (m *mockWorld) FallingBlocksEnabled() bool   { return m.fallsEnabled }

func (m *mockWorld) HasFallingBlockAt(origin vec.Vec3, radius float64) bool {
	for _, s := range m.spawns {
		if s.Origin.DistanceTo(origin) <= radius && s.Origin.Equals(origin) {
			return true
		}
	}
	return false
}

func (m *mockWorld) SpawnFallingBlock(spawn FallingBlockSpawn) {
	m.spawns = append(m.spawns, spawn)
}

func (m *mockWorld) EmitBlockEffects(pos vec.Vec3, dust float64, sound string) {
	m.effects = append(m.effects, effectCall{pos: pos, dust: dust, sound: sound})
}

// runTick выполняет все задачи, отложенные к этому моменту, как один тик.
// Задачи, отложенные во время выполнения, остаются до следующего тика.
func (m *mockWorld) runTick() {
	tasks := m.deferred
	m.deferred = nil
	for _, task := range tasks {
		task()
	}
}

// fixedRand возвращает заранее заданное значение розыгрыша
type fixedRand struct {
	value float64
}

func (r *fixedRand) Float64() float64 { return r.value }
