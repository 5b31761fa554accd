package world

import (
	"sync"

	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// ChunkSize — размер чанка по каждой оси
const ChunkSize = 16

// Chunk представляет кубический участок мира размером 16x16x16 блоков
type Chunk struct {
	Coords vec.Vec3 // Координаты чанка в мире

	// Blocks[x][y][z] в локальных координатах чанка
	Blocks [ChunkSize][ChunkSize][ChunkSize]block.BlockID

	Metadata map[vec.Vec3]map[string]interface{} // Метаданные блоков по локальным координатам
	Changes  map[vec.Vec3]struct{}               // Измененные блоки с момента последнего сохранения
	Tickable map[vec.Vec3]struct{}               // Блоки, требующие обновления каждый тик

	ChangeCounter int          // Счетчик изменений
	Mu            sync.RWMutex // Мьютекс для безопасного доступа
}

// NewChunk создаёт новый чанк с указанными координатами
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{
		Coords:   coords,
		Metadata: make(map[vec.Vec3]map[string]interface{}),
		Changes:  make(map[vec.Vec3]struct{}),
		Tickable: make(map[vec.Vec3]struct{}),
	}
}

// GetBlockID возвращает идентификатор блока по локальным координатам
func (c *Chunk) GetBlockID(local vec.Vec3) block.BlockID {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	return c.Blocks[local.X][local.Y][local.Z]
}

// SetBlockID устанавливает блок по локальным координатам и обновляет
// индекс тикаемых блоков
func (c *Chunk) SetBlockID(local vec.Vec3, id block.BlockID) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	c.Blocks[local.X][local.Y][local.Z] = id
	c.Changes[local] = struct{}{}
	c.ChangeCounter++

	if behavior, exists := block.Get(id); exists && behavior.NeedsTick() {
		c.Tickable[local] = struct{}{}
	} else {
		delete(c.Tickable, local)
	}
}

// SetBlockMetadata устанавливает значение метаданных блока
func (c *Chunk) SetBlockMetadata(local vec.Vec3, key string, value interface{}) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	if _, exists := c.Metadata[local]; !exists {
		c.Metadata[local] = make(map[string]interface{})
	}

	c.Metadata[local][key] = value
	c.Changes[local] = struct{}{}
	c.ChangeCounter++
}

// SetBlockMetadataMap устанавливает несколько метаданных блока разом
func (c *Chunk) SetBlockMetadataMap(local vec.Vec3, metadata map[string]interface{}) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	if _, exists := c.Metadata[local]; !exists {
		c.Metadata[local] = make(map[string]interface{})
	}

	for key, value := range metadata {
		c.Metadata[local][key] = value
	}

	c.Changes[local] = struct{}{}
	c.ChangeCounter++
}

// GetBlockMetadata возвращает копию всех метаданных блока
func (c *Chunk) GetBlockMetadata(local vec.Vec3) map[string]interface{} {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	if metadata, exists := c.Metadata[local]; exists {
		result := make(map[string]interface{}, len(metadata))
		for k, v := range metadata {
			result[k] = v
		}
		return result
	}

	return make(map[string]interface{})
}

// GetBlockMetadataValue возвращает конкретное значение метаданных
func (c *Chunk) GetBlockMetadataValue(local vec.Vec3, key string) (interface{}, bool) {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	if metadata, exists := c.Metadata[local]; exists {
		if value, ok := metadata[key]; ok {
			return value, true
		}
	}

	return nil, false
}

// ClearBlockMetadata удаляет все метаданные блока
func (c *Chunk) ClearBlockMetadata(local vec.Vec3) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	delete(c.Metadata, local)
	c.Changes[local] = struct{}{}
	c.ChangeCounter++
}

// TickablePositions возвращает снимок локальных координат тикаемых блоков
func (c *Chunk) TickablePositions() []vec.Vec3 {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	positions := make([]vec.Vec3, 0, len(c.Tickable))
	for local := range c.Tickable {
		positions = append(positions, local)
	}
	return positions
}

// CollectChanges возвращает и сбрасывает накопленные изменения чанка
func (c *Chunk) CollectChanges() []vec.Vec3 {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	if len(c.Changes) == 0 {
		return nil
	}

	changed := make([]vec.Vec3, 0, len(c.Changes))
	for local := range c.Changes {
		changed = append(changed, local)
	}
	c.Changes = make(map[vec.Vec3]struct{})
	return changed
}
