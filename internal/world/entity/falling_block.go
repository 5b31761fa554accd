package entity

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
	"github.com/annel0/voxel-physics/internal/world/physics"
)

// Ключи полезной нагрузки падающей сущности
const (
	payloadBlockID   = "block_id"         // block.BlockID падающего блока
	payloadOrigin    = "origin"           // vec.Vec3 точка происхождения
	payloadDirection = "direction"        // vec.Vec3 начальное направление
	payloadBlockData = "block_data"       // map[string]interface{} метаданные блока
	payloadImpactMul = "impact_damage_mul" // float64 множитель урона
)

// Скорость падения в блоках в секунду
const fallSpeed = 8.0

// FallingBlockBehavior реализует движение падающего блока: опциональный
// боковой сдвиг в соседнюю ячейку, затем падение вниз до первой занятой
// ячейки. При приземлении блок записывается обратно в мир.
type FallingBlockBehavior struct{}

// NewFallingBlockBehavior создает поведение падающего блока
func NewFallingBlockBehavior() *FallingBlockBehavior {
	return &FallingBlockBehavior{}
}

// OnSpawn задает начальную скорость по направлению спауна
func (b *FallingBlockBehavior) OnSpawn(api EntityAPI, e *Entity) {
	direction, ok := e.Payload[payloadDirection].(vec.Vec3)
	if !ok {
		direction = vec.Vec3{Y: -1}
	}
	e.Velocity = vec.FromVec3(direction).Scale(fallSpeed)
}

// OnDespawn ничего не делает для падающего блока
func (b *FallingBlockBehavior) OnDespawn(api EntityAPI, e *Entity) {
}

// Update продвигает сущность на один шаг симуляции
func (b *FallingBlockBehavior) Update(api EntityAPI, e *Entity, dt float64) {
	// Боковой сдвиг завершается, когда сущность покидает исходную ячейку
	if e.Velocity.Y == 0 {
		origin, _ := e.Payload[payloadOrigin].(vec.Vec3)
		if !e.PrecisePos.ToVec3().Equals(origin) {
			e.Velocity = vec.Vec3Float{Y: -fallSpeed}
		}
	}

	next := e.PrecisePos.Add(e.Velocity.Scale(dt))

	// Падающая вниз сущность останавливается над первой незаменяемой ячейкой
	if e.Velocity.Y < 0 {
		below := next.ToVec3()
		if below.Equals(e.Position) || physics.IsReplaceable(api, below) {
			e.PrecisePos = next
			e.Position = next.ToVec3()
			return
		}
		b.settle(api, e, e.Position)
		return
	}

	e.PrecisePos = next
	e.Position = next.ToVec3()
}

// settle записывает блок обратно в мир и удаляет сущность
func (b *FallingBlockBehavior) settle(api EntityAPI, e *Entity, landing vec.Vec3) {
	id, ok := e.Payload[payloadBlockID].(block.BlockID)
	if !ok {
		api.DespawnEntity(e.ID)
		return
	}

	api.SetBlock(landing, id)
	if data, ok := e.Payload[payloadBlockData].(map[string]interface{}); ok {
		for key, value := range data {
			api.SetBlockMetadata(landing, key, value)
		}
	}

	// Приземление меняет опору: соседи должны перепроверить устойчивость
	api.TriggerNeighborUpdates(landing)

	api.NotifySettled(e, landing)
	api.DespawnEntity(e.ID)
}

// ImpactDamageMul возвращает множитель урона падающей сущности
func ImpactDamageMul(e *Entity) float64 {
	if v, ok := e.Payload[payloadImpactMul].(float64); ok {
		return v
	}
	return 1.0
}

// BlockIDOf возвращает идентичность падающего блока
func BlockIDOf(e *Entity) (block.BlockID, bool) {
	id, ok := e.Payload[payloadBlockID].(block.BlockID)
	return id, ok
}

// OriginOf возвращает точку происхождения падающей сущности
func OriginOf(e *Entity) (vec.Vec3, bool) {
	origin, ok := e.Payload[payloadOrigin].(vec.Vec3)
	return origin, ok
}
