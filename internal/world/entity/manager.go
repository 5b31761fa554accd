package entity

import (
	"sync"

	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/physics"
)

// EntityManager управляет всеми сущностями в мире
type EntityManager struct {
	entities     map[uint64]*Entity            // Хранилище всех сущностей
	behaviors    map[EntityType]EntityBehavior // Реестр поведений сущностей
	nextEntityID uint64                        // Счетчик для генерации ID
	mu           sync.RWMutex                  // Мьютекс для безопасного доступа
}

// NewEntityManager создаёт новый менеджер сущностей
func NewEntityManager() *EntityManager {
	return &EntityManager{
		entities:     make(map[uint64]*Entity),
		behaviors:    make(map[EntityType]EntityBehavior),
		nextEntityID: 1,
	}
}

// RegisterBehavior регистрирует поведение для типа сущности
func (em *EntityManager) RegisterBehavior(entityType EntityType, behavior EntityBehavior) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.behaviors[entityType] = behavior
}

// RegisterDefaultBehaviors регистрирует поведения по умолчанию
func (em *EntityManager) RegisterDefaultBehaviors() {
	em.RegisterBehavior(EntityTypeFallingBlock, NewFallingBlockBehavior())
}

// GetBehavior возвращает поведение для типа сущности
func (em *EntityManager) GetBehavior(entityType EntityType) (EntityBehavior, bool) {
	em.mu.RLock()
	defer em.mu.RUnlock()
	behavior, exists := em.behaviors[entityType]
	return behavior, exists
}

// SpawnFallingBlock создает падающую сущность по заявке подсистемы физики
func (em *EntityManager) SpawnFallingBlock(spawn physics.FallingBlockSpawn, api EntityAPI) uint64 {
	em.mu.Lock()
	entityID := em.nextEntityID
	em.nextEntityID++

	e := NewEntity(entityID, EntityTypeFallingBlock, spawn.Pos)
	e.Payload[payloadBlockID] = spawn.BlockID
	e.Payload[payloadOrigin] = spawn.Origin
	e.Payload[payloadDirection] = spawn.Direction
	e.Payload[payloadBlockData] = spawn.Payload
	e.Payload[payloadImpactMul] = spawn.ImpactDamageMul
	em.entities[entityID] = e
	em.mu.Unlock()

	if behavior, exists := em.GetBehavior(EntityTypeFallingBlock); exists {
		behavior.OnSpawn(api, e)
	}

	return entityID
}

// DespawnEntity удаляет сущность из мира
func (em *EntityManager) DespawnEntity(entityID uint64, api EntityAPI) bool {
	em.mu.Lock()
	e, exists := em.entities[entityID]
	if !exists {
		em.mu.Unlock()
		return false
	}
	e.Active = false
	delete(em.entities, entityID)
	behavior, hasBehavior := em.behaviors[e.Type]
	em.mu.Unlock()

	if hasBehavior {
		behavior.OnDespawn(api, e)
	}
	return true
}

// GetEntity возвращает сущность по ID
func (em *EntityManager) GetEntity(entityID uint64) (*Entity, bool) {
	em.mu.RLock()
	defer em.mu.RUnlock()

	e, exists := em.entities[entityID]
	return e, exists
}

// GetEntitiesInRange возвращает сущности в указанном радиусе
func (em *EntityManager) GetEntitiesInRange(center vec.Vec3, radius float64) []*Entity {
	em.mu.RLock()
	defer em.mu.RUnlock()

	centerFloat := vec.FromVec3(center)
	var result []*Entity
	for _, e := range em.entities {
		if e.PrecisePos.DistanceTo(centerFloat) <= radius {
			result = append(result, e)
		}
	}
	return result
}

// HasFallingBlockAt проверяет, есть ли в радиусе radius от origin падающая
// сущность с записанной точкой происхождения origin. Используется защитой
// от дублей при отложенном спауне.
func (em *EntityManager) HasFallingBlockAt(origin vec.Vec3, radius float64) bool {
	em.mu.RLock()
	defer em.mu.RUnlock()

	originFloat := vec.FromVec3(origin)
	for _, e := range em.entities {
		if e.Type != EntityTypeFallingBlock {
			continue
		}
		recorded, ok := e.Payload[payloadOrigin].(vec.Vec3)
		if !ok || !recorded.Equals(origin) {
			continue
		}
		if e.PrecisePos.DistanceTo(originFloat) <= radius {
			return true
		}
	}
	return false
}

// Update обновляет все активные сущности на один тик
func (em *EntityManager) Update(api EntityAPI, dt float64) {
	// Снимок под блокировкой: поведения могут деспаунить сущности
	em.mu.RLock()
	snapshot := make([]*Entity, 0, len(em.entities))
	for _, e := range em.entities {
		snapshot = append(snapshot, e)
	}
	em.mu.RUnlock()

	for _, e := range snapshot {
		if !e.Active {
			continue
		}
		if behavior, exists := em.GetBehavior(e.Type); exists {
			behavior.Update(api, e, dt)
		}
	}
}

// Count возвращает текущее количество сущностей
func (em *EntityManager) Count() int {
	em.mu.RLock()
	defer em.mu.RUnlock()
	return len(em.entities)
}
