package world

import (
	"time"

	"github.com/annel0/voxel-physics/internal/eventbus"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
	"github.com/annel0/voxel-physics/internal/world/entity"
	"github.com/annel0/voxel-physics/internal/world/physics"
)

// worldBlockAPI реализует block.BlockAPI, physics.World и entity.EntityAPI
// поверх WorldManager. Все обращения блоков и сущностей к миру идут через него.
type worldBlockAPI struct {
	wm *WorldManager
}

// GetBlockID возвращает идентификатор блока в указанной позиции
func (api *worldBlockAPI) GetBlockID(pos vec.Vec3) block.BlockID {
	chunk := api.wm.getOrCreateChunk(pos.ToChunkCoords())
	return chunk.GetBlockID(pos.LocalInChunk())
}

// SetBlock устанавливает блок, инициализирует его метаданные и уведомляет
// соседей об изменении
func (api *worldBlockAPI) SetBlock(pos vec.Vec3, id block.BlockID) {
	chunk := api.wm.getOrCreateChunk(pos.ToChunkCoords())
	local := pos.LocalInChunk()

	chunk.SetBlockID(local, id)
	chunk.ClearBlockMetadata(local)

	behavior, exists := block.Get(id)
	if exists {
		if metadata := behavior.CreateMetadata(); len(metadata) > 0 {
			chunk.SetBlockMetadataMap(local, metadata)
		}
		behavior.OnPlace(api, pos)
	}

	api.notifyNeighbors(pos)
}

// RemoveBlock заменяет блок воздухом, отбрасывая его метаданные
func (api *worldBlockAPI) RemoveBlock(pos vec.Vec3) {
	chunk := api.wm.getOrCreateChunk(pos.ToChunkCoords())
	local := pos.LocalInChunk()

	if behavior, exists := block.Get(chunk.GetBlockID(local)); exists {
		behavior.OnBreak(api, pos)
	}

	chunk.SetBlockID(local, block.AirBlockID)
	chunk.ClearBlockMetadata(local)

	api.notifyNeighbors(pos)
}

// GetBlockMetadata возвращает значение метаданных блока по ключу
func (api *worldBlockAPI) GetBlockMetadata(pos vec.Vec3, key string) interface{} {
	chunk := api.wm.getOrCreateChunk(pos.ToChunkCoords())
	value, _ := chunk.GetBlockMetadataValue(pos.LocalInChunk(), key)
	return value
}

// SetBlockMetadata устанавливает значение метаданных блока по ключу
func (api *worldBlockAPI) SetBlockMetadata(pos vec.Vec3, key string, value interface{}) {
	chunk := api.wm.getOrCreateChunk(pos.ToChunkCoords())
	chunk.SetBlockMetadata(pos.LocalInChunk(), key, value)
}

// CaptureBlockMetadata возвращает копию всех метаданных блока
func (api *worldBlockAPI) CaptureBlockMetadata(pos vec.Vec3) map[string]interface{} {
	chunk := api.wm.getOrCreateChunk(pos.ToChunkCoords())
	return chunk.GetBlockMetadata(pos.LocalInChunk())
}

// ScheduleUpdateOnce помечает блок для разового обновления в следующем тике
func (api *worldBlockAPI) ScheduleUpdateOnce(pos vec.Vec3) {
	api.wm.scheduleOnce(pos)
}

// TriggerNeighborUpdates уведомляет всех шестерых соседей об изменении
func (api *worldBlockAPI) TriggerNeighborUpdates(pos vec.Vec3) {
	api.notifyNeighbors(pos)
}

// notifyNeighbors вызывает OnNeighborChange у всех соседей позиции
func (api *worldBlockAPI) notifyNeighbors(pos vec.Vec3) {
	for _, f := range block.AllFaces() {
		neighborPos := pos.Add(f.Offset())
		if behavior, exists := block.Get(api.GetBlockID(neighborPos)); exists {
			behavior.OnNeighborChange(api, neighborPos, pos)
		}
	}
}

// Defer ставит одноразовую задачу в очередь следующего тика
func (api *worldBlockAPI) Defer(task func()) {
	api.wm.Defer(task)
}

// IsAuthoritative возвращает true только на авторитетном хосте симуляции
func (api *worldBlockAPI) IsAuthoritative() bool {
	return api.wm.authoritative
}

// FallingBlocksEnabled возвращает глобальный флаг падающих блоков
func (api *worldBlockAPI) FallingBlocksEnabled() bool {
	return api.wm.fallingEnabled
}

// HasFallingBlockAt проверяет наличие падающей сущности с указанной
// точкой происхождения
func (api *worldBlockAPI) HasFallingBlockAt(origin vec.Vec3, radius float64) bool {
	return api.wm.entities.HasFallingBlockAt(origin, radius)
}

// SpawnFallingBlock создает падающую сущность и публикует событие падения
func (api *worldBlockAPI) SpawnFallingBlock(spawn physics.FallingBlockSpawn) {
	entityID := api.wm.entities.SpawnFallingBlock(spawn, api)

	_ = eventbus.Publish(api.wm.ctx, eventbus.NewEnvelope("world", eventbus.EventBlockFall, 4, BlockFallEvent{
		EntityID:  entityID,
		Block:     block.NameOf(spawn.BlockID),
		Origin:    spawn.Origin,
		Direction: spawn.Direction,
	}))
}

// EmitBlockEffects публикует эффекты падения для внешних потребителей
func (api *worldBlockAPI) EmitBlockEffects(pos vec.Vec3, dustIntensity float64, fallSound string) {
	_ = eventbus.Publish(api.wm.ctx, eventbus.NewEnvelope("world", eventbus.EventBlockEffects, 2, BlockEffectsEvent{
		Position:      pos,
		DustIntensity: dustIntensity,
		FallSound:     fallSound,
	}))
}

// GetEntitiesInRange возвращает сущности в указанном радиусе
func (api *worldBlockAPI) GetEntitiesInRange(center vec.Vec3, radius float64) []*entity.Entity {
	return api.wm.entities.GetEntitiesInRange(center, radius)
}

// DespawnEntity удаляет сущность из мира
func (api *worldBlockAPI) DespawnEntity(entityID uint64) {
	api.wm.entities.DespawnEntity(entityID, api)
}

// NotifySettled записывает приземление падающей сущности и публикует событие
func (api *worldBlockAPI) NotifySettled(e *entity.Entity, landing vec.Vec3) {
	origin, _ := entity.OriginOf(e)
	id, _ := entity.BlockIDOf(e)

	if api.wm.recordLanding != nil {
		api.wm.recordLanding(id, origin, landing)
	}

	_ = eventbus.Publish(api.wm.ctx, eventbus.NewEnvelope("world", eventbus.EventEntitySettle, 4, EntitySettleEvent{
		EntityID:        e.ID,
		Block:           block.NameOf(id),
		Origin:          origin,
		Landing:         landing,
		ImpactDamageMul: entity.ImpactDamageMul(e),
		Time:            time.Now().UTC(),
	}))
}
