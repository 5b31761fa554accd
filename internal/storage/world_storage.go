package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/gzip"

	"github.com/annel0/voxel-physics/internal/logging"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// WorldStorage представляет собой хранилище данных мира
type WorldStorage struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool
}

// ChunkDelta содержит изменения в чанке
type ChunkDelta struct {
	Coords      vec.Vec3              `json:"coords"`
	BlockDeltas map[string]BlockDelta `json:"blocks"` // Ключ - упакованные координаты "x:y:z"
}

// BlockDelta содержит изменения блока
type BlockDelta struct {
	ID      block.BlockID          `json:"id"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// NewWorldStorage создает новое хранилище мира
func NewWorldStorage(dataPath string) (*WorldStorage, error) {
	dbPath := filepath.Join(dataPath, "world")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	return &WorldStorage{
		db:      db,
		dbPath:  dbPath,
		isReady: true,
	}, nil
}

// Close закрывает хранилище данных
func (ws *WorldStorage) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return nil
	}

	ws.isReady = false
	return ws.db.Close()
}

// SaveChunk сохраняет накопленные изменения чанка
func (ws *WorldStorage) SaveChunk(chunk *world.Chunk) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	changed := chunk.CollectChanges()
	if len(changed) == 0 {
		return nil
	}

	delta := ChunkDelta{
		Coords:      chunk.Coords,
		BlockDeltas: make(map[string]BlockDelta, len(changed)),
	}

	for _, local := range changed {
		key := fmt.Sprintf("%d:%d:%d", local.X, local.Y, local.Z)
		delta.BlockDeltas[key] = BlockDelta{
			ID:      chunk.GetBlockID(local),
			Payload: chunk.GetBlockMetadata(local),
		}
	}

	data, err := json.Marshal(delta)
	if err != nil {
		return fmt.Errorf("ошибка сериализации дельты: %w", err)
	}

	compressed, err := compressDelta(data)
	if err != nil {
		return fmt.Errorf("ошибка сжатия дельты: %w", err)
	}

	key := chunkKey(delta.Coords)
	err = ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, compressed)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}

	return nil
}

// LoadChunk загружает дельту чанка
func (ws *WorldStorage) LoadChunk(coords vec.Vec3) (*ChunkDelta, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	var data []byte
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(coords))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})

	// Если чанк не найден, возвращаем пустую дельту
	if err == badger.ErrKeyNotFound {
		return &ChunkDelta{
			Coords:      coords,
			BlockDeltas: make(map[string]BlockDelta),
		}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}

	decompressed, err := decompressDelta(data)
	if err != nil {
		return nil, fmt.Errorf("ошибка распаковки дельты: %w", err)
	}

	var delta ChunkDelta
	if err := json.Unmarshal(decompressed, &delta); err != nil {
		return nil, fmt.Errorf("ошибка десериализации дельты: %w", err)
	}

	return &delta, nil
}

// ApplyDeltaToChunk применяет дельту к чанку
func (ws *WorldStorage) ApplyDeltaToChunk(chunk *world.Chunk, delta *ChunkDelta) error {
	if delta == nil || len(delta.BlockDeltas) == 0 {
		return nil
	}

	for key, blockDelta := range delta.BlockDeltas {
		var x, y, z int
		if _, err := fmt.Sscanf(key, "%d:%d:%d", &x, &y, &z); err != nil {
			logging.Warn("Ошибка парсинга ключа '%s': %v", key, err)
			continue
		}

		if x < 0 || x >= world.ChunkSize || y < 0 || y >= world.ChunkSize || z < 0 || z >= world.ChunkSize {
			logging.Warn("Некорректные локальные координаты: %d:%d:%d", x, y, z)
			continue
		}

		local := vec.Vec3{X: x, Y: y, Z: z}
		chunk.SetBlockID(local, blockDelta.ID)

		if len(blockDelta.Payload) > 0 {
			chunk.SetBlockMetadataMap(local, blockDelta.Payload)
		}
	}

	return nil
}

// LoadAndApplyChunk загружает и применяет дельту чанка
func (ws *WorldStorage) LoadAndApplyChunk(chunk *world.Chunk) error {
	delta, err := ws.LoadChunk(chunk.Coords)
	if err != nil {
		return err
	}

	return ws.ApplyDeltaToChunk(chunk, delta)
}

// chunkKey формирует ключ BadgerDB для чанка
func chunkKey(coords vec.Vec3) []byte {
	return []byte(fmt.Sprintf("chunk:%d:%d:%d", coords.X, coords.Y, coords.Z))
}

// compressDelta сжимает сериализованную дельту перед записью
func compressDelta(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decompressDelta распаковывает дельту после чтения
func decompressDelta(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
