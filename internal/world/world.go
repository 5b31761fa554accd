package world

import (
	"context"
	"sync"
	"time"

	"github.com/annel0/voxel-physics/internal/eventbus"
	"github.com/annel0/voxel-physics/internal/logging"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
	"github.com/annel0/voxel-physics/internal/world/entity"
	"github.com/annel0/voxel-physics/internal/world/physics"
)

// TickRate — количество тиков симуляции в секунду
const TickRate = 20

// WorldManager управляет миром игры и координирует все процессы.
// Все изменения состояния блоков происходят на потоке тиков.
type WorldManager struct {
	chunks map[vec.Vec3]*Chunk // Активные чанки
	mu     sync.RWMutex        // Мьютекс для карты чанков

	seed      int64           // Глобальный сид для генерации
	generator *WorldGenerator // Генератор мира
	entities  *entity.EntityManager

	currentTick uint64
	tickMu      sync.Mutex

	// Очередь отложенных задач с двойной буферизацией: задачи,
	// поставленные во время тика N, выполняются в начале тика N+1.
	deferredMu   sync.Mutex
	deferredNext []func()

	// Разовые обновления блоков, накопленные к следующему тику
	scheduledMu sync.Mutex
	scheduled   map[vec.Vec3]struct{}

	authoritative  bool // Авторитетный хост симуляции
	fallingEnabled bool // Глобальный флаг падающих блоков

	// Функции хранилища внедряются снаружи, чтобы не связывать мир
	// с конкретной реализацией хранилища
	saveChunkFunc func(*Chunk) error
	loadChunkFunc func(*Chunk) error
	recordLanding func(block.BlockID, vec.Vec3, vec.Vec3)

	api          *worldBlockAPI
	log          *logging.Logger
	lastSaveTime time.Time
	ctx          context.Context
	cancelFunc   context.CancelFunc
}

// NewWorldManager создаёт новый менеджер мира с указанным сидом
func NewWorldManager(seed int64) *WorldManager {
	ctx, cancel := context.WithCancel(context.Background())

	entities := entity.NewEntityManager()
	entities.RegisterDefaultBehaviors()

	wm := &WorldManager{
		chunks:         make(map[vec.Vec3]*Chunk),
		seed:           seed,
		generator:      NewWorldGenerator(seed),
		entities:       entities,
		scheduled:      make(map[vec.Vec3]struct{}),
		authoritative:  true,
		fallingEnabled: true,
		log:            logging.GetLoggerManager().MustGetLogger("world"),
		lastSaveTime:   time.Now(),
		ctx:            ctx,
		cancelFunc:     cancel,
	}
	wm.api = &worldBlockAPI{wm: wm}
	return wm
}

// BlockAPI возвращает API мира для блоков и подсистемы физики
func (wm *WorldManager) BlockAPI() physics.World {
	return wm.api
}

// Entities возвращает менеджер сущностей
func (wm *WorldManager) Entities() *entity.EntityManager {
	return wm.entities
}

// SetAuthoritative включает или выключает авторитетный режим симуляции
func (wm *WorldManager) SetAuthoritative(authoritative bool) {
	wm.authoritative = authoritative
}

// SetFallingBlocksEnabled устанавливает глобальный флаг падающих блоков
func (wm *WorldManager) SetFallingBlocksEnabled(enabled bool) {
	wm.fallingEnabled = enabled
}

// SetStorageFunctions устанавливает функции сохранения и загрузки чанков
func (wm *WorldManager) SetStorageFunctions(save func(*Chunk) error, load func(*Chunk) error) {
	wm.saveChunkFunc = save
	wm.loadChunkFunc = load
}

// SetLandingRecorder устанавливает функцию записи приземлений падающих блоков
func (wm *WorldManager) SetLandingRecorder(record func(id block.BlockID, origin, landing vec.Vec3)) {
	wm.recordLanding = record
}

// CurrentTick возвращает номер текущего тика
func (wm *WorldManager) CurrentTick() uint64 {
	wm.tickMu.Lock()
	defer wm.tickMu.Unlock()
	return wm.currentTick
}

// ChunkCount возвращает количество активных чанков
func (wm *WorldManager) ChunkCount() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return len(wm.chunks)
}

// Run запускает цикл тиков и автосохранение
func (wm *WorldManager) Run(parentCtx context.Context) {
	if parentCtx != nil {
		childCtx, cancel := context.WithCancel(parentCtx)
		wm.ctx = childCtx
		wm.cancelFunc = cancel
	}

	go wm.tickLoop()
	go wm.autoSaveLoop()
}

// Stop останавливает все процессы мира
func (wm *WorldManager) Stop() {
	wm.cancelFunc()
}

// tickLoop выполняет тики с фиксированной частотой
func (wm *WorldManager) tickLoop() {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-wm.ctx.Done():
			return
		case <-ticker.C:
			wm.processTick()
		}
	}
}

// autoSaveLoop запускает периодическое сохранение мира
func (wm *WorldManager) autoSaveLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-wm.ctx.Done():
			return
		case <-ticker.C:
			wm.SaveWorld(false)
		}
	}
}

// processTick обрабатывает один глобальный тик
func (wm *WorldManager) processTick() {
	wm.tickMu.Lock()
	wm.currentTick++
	wm.tickMu.Unlock()

	const dt = 1.0 / TickRate

	// Сначала отложенные задачи предыдущего тика. Задачи, поставленные
	// во время их выполнения, попадают в очередь следующего тика.
	wm.deferredMu.Lock()
	tasks := wm.deferredNext
	wm.deferredNext = nil
	wm.deferredMu.Unlock()

	for _, task := range tasks {
		task()
	}

	// Разовые обновления блоков
	wm.scheduledMu.Lock()
	scheduled := wm.scheduled
	wm.scheduled = make(map[vec.Vec3]struct{})
	wm.scheduledMu.Unlock()

	for pos := range scheduled {
		if behavior, exists := block.Get(wm.api.GetBlockID(pos)); exists {
			behavior.TickUpdate(wm.api, pos)
		}
	}

	// Регулярные обновления тикаемых блоков
	wm.mu.RLock()
	activeChunks := make([]*Chunk, 0, len(wm.chunks))
	for _, chunk := range wm.chunks {
		activeChunks = append(activeChunks, chunk)
	}
	wm.mu.RUnlock()

	for _, chunk := range activeChunks {
		base := vec.Vec3{X: chunk.Coords.X << 4, Y: chunk.Coords.Y << 4, Z: chunk.Coords.Z << 4}
		for _, local := range chunk.TickablePositions() {
			pos := base.Add(local)
			if behavior, exists := block.Get(wm.api.GetBlockID(pos)); exists {
				behavior.TickUpdate(wm.api, pos)
			}
		}
	}

	// Сущности обновляются после блоков
	wm.entities.Update(wm.api, dt)
}

// Defer ставит одноразовую задачу в очередь следующего тика
func (wm *WorldManager) Defer(task func()) {
	wm.deferredMu.Lock()
	wm.deferredNext = append(wm.deferredNext, task)
	wm.deferredMu.Unlock()
}

// scheduleOnce помечает блок для разового обновления в следующем тике
func (wm *WorldManager) scheduleOnce(pos vec.Vec3) {
	wm.scheduledMu.Lock()
	wm.scheduled[pos] = struct{}{}
	wm.scheduledMu.Unlock()
}

// getOrCreateChunk возвращает чанк, генерируя и загружая его при необходимости
func (wm *WorldManager) getOrCreateChunk(coords vec.Vec3) *Chunk {
	wm.mu.RLock()
	chunk, exists := wm.chunks[coords]
	wm.mu.RUnlock()
	if exists {
		return chunk
	}

	wm.mu.Lock()
	defer wm.mu.Unlock()

	// Повторная проверка: чанк могли создать, пока мы ждали блокировку
	if chunk, exists := wm.chunks[coords]; exists {
		return chunk
	}

	chunk = wm.generator.GenerateChunk(coords)
	if wm.loadChunkFunc != nil {
		if err := wm.loadChunkFunc(chunk); err != nil {
			wm.log.Warn("Не удалось загрузить дельту чанка %v: %v", coords, err)
		}
	}
	wm.chunks[coords] = chunk
	return chunk
}

// PlaceBlock устанавливает блок с проверкой устойчивости.
// Возвращает false и символьный код причины, если установка отклонена.
func (wm *WorldManager) PlaceBlock(pos vec.Vec3, id block.BlockID) (bool, string) {
	if profile, ok := physics.ProfileFor(id); ok {
		if allowed, reason := physics.CanPlace(wm.api, pos, profile.Rule); !allowed {
			physics.CountPlacementRejected()
			wm.log.Debug("Установка блока %d в %v отклонена: %s", id, pos, reason)
			behaviorName := ""
			if behavior, exists := block.Get(id); exists {
				behaviorName = behavior.Name()
			}
			_ = eventbus.Publish(wm.ctx, eventbus.NewEnvelope("world", eventbus.EventBlockRejected, 2, BlockRejectedEvent{
				Block:    behaviorName,
				Position: pos,
				Reason:   reason,
			}))
			return false, reason
		}
	}

	wm.api.SetBlock(pos, id)
	return true, ""
}

// BreakBlock разрушает блок в указанной позиции
func (wm *WorldManager) BreakBlock(pos vec.Vec3) {
	wm.api.RemoveBlock(pos)
}

// SaveWorld сохраняет все активные чанки
func (wm *WorldManager) SaveWorld(forced bool) {
	if wm.saveChunkFunc == nil {
		return
	}

	wm.mu.RLock()
	chunksToSave := make([]*Chunk, 0, len(wm.chunks))
	for _, chunk := range wm.chunks {
		chunksToSave = append(chunksToSave, chunk)
	}
	wm.mu.RUnlock()

	saved := 0
	for _, chunk := range chunksToSave {
		if err := wm.saveChunkFunc(chunk); err != nil {
			wm.log.Error("Ошибка сохранения чанка %v: %v", chunk.Coords, err)
			continue
		}
		saved++
	}

	wm.lastSaveTime = time.Now()
	wm.log.Info("Мир сохранен: %d чанков (forced=%v)", saved, forced)
	_ = eventbus.Publish(wm.ctx, eventbus.NewEnvelope("world", eventbus.EventWorldSaved, 3, WorldSavedEvent{
		Chunks: saved,
		Forced: forced,
	}))
}
