package entity

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// EntityType представляет тип сущности
type EntityType uint16

const (
	EntityTypeFallingBlock EntityType = iota // Падающий блок
	EntityTypeItem                           // Выпавший предмет
)

// Entity представляет базовую сущность в мире
type Entity struct {
	ID         uint64                 // Уникальный идентификатор сущности
	Type       EntityType             // Тип сущности
	Position   vec.Vec3               // Текущая позиция в мире (в координатах блоков)
	PrecisePos vec.Vec3Float          // Точная позиция для плавного движения
	Velocity   vec.Vec3Float          // Текущая скорость
	Payload    map[string]interface{} // Дополнительные данные сущности
	Active     bool                   // Активна ли сущность
}

// NewEntity создаёт новую сущность
func NewEntity(id uint64, entityType EntityType, position vec.Vec3) *Entity {
	return &Entity{
		ID:         id,
		Type:       entityType,
		Position:   position,
		PrecisePos: vec.FromVec3(position),
		Velocity:   vec.Vec3Float{},
		Payload:    make(map[string]interface{}),
		Active:     true,
	}
}

// EntityBehavior определяет поведение сущности
type EntityBehavior interface {
	// Update обновляет состояние сущности
	Update(api EntityAPI, entity *Entity, dt float64)

	// OnSpawn вызывается при создании сущности
	OnSpawn(api EntityAPI, entity *Entity)

	// OnDespawn вызывается при удалении сущности
	OnDespawn(api EntityAPI, entity *Entity)
}

// EntityAPI определяет операции мира, доступные поведению сущности
type EntityAPI interface {
	block.BlockAPI

	// GetEntitiesInRange возвращает сущности в указанном радиусе
	GetEntitiesInRange(center vec.Vec3, radius float64) []*Entity

	// DespawnEntity удаляет сущность из мира
	DespawnEntity(entityID uint64)

	// NotifySettled сообщает миру о приземлении падающей сущности.
	// Мир записывает точку приземления и публикует событие.
	NotifySettled(entity *Entity, landing vec.Vec3)
}
