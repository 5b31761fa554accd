package physics

import (
	"github.com/annel0/voxel-physics/internal/logging"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// DuplicateSearchRadius — радиус поиска существующих падающих сущностей
// вокруг точки происхождения при защите от дублей.
const DuplicateSearchRadius = 1.5

// SpawnCoordinator превращает сработавший триггер в реальную падающую
// сущность. Выполнение откладывается на один тик: в момент триггера
// вспомогательные данные блока могут быть еще не финализированы.
type SpawnCoordinator struct {
	log *logging.Logger
}

// NewSpawnCoordinator создает координатор спауна
func NewSpawnCoordinator() *SpawnCoordinator {
	return &SpawnCoordinator{
		log: logging.GetLoggerManager().MustGetLogger("physics"),
	}
}

// Schedule ставит одноразовую задачу спауна в очередь следующего тика.
// Управление возвращается немедленно. Задача захватывает только pos и id —
// минимальный снимок для защиты от устаревшего триггера, а не замыкание
// над изменяемым состоянием мира.
func (c *SpawnCoordinator) Schedule(w World, pos vec.Vec3, id block.BlockID, direction vec.Vec3, fall *FallBehavior) {
	w.Defer(func() {
		c.execute(w, pos, id, direction, fall)
	})
}

// execute выполняет отложенный спаун с защитными проверками.
// Срабатывание любой из защит — тихий успешный no-op, не ошибка:
// это нормальные последствия чередования событий между тиками.
func (c *SpawnCoordinator) execute(w World, pos vec.Vec3, id block.BlockID, direction vec.Vec3, fall *FallBehavior) {
	// Защита от устаревшего триггера: блок в pos успел измениться
	if w.GetBlockID(pos) != id {
		abortedStale.Inc()
		c.log.Trace("Спаун отменен: блок в %v изменился после планирования", pos)
		return
	}

	// Защита от дублей: падающая сущность с этой точкой происхождения уже есть
	if w.HasFallingBlockAt(pos, DuplicateSearchRadius) {
		abortedDuplicate.Inc()
		c.log.Trace("Спаун отменен: падающая сущность из %v уже существует", pos)
		return
	}

	// Подстановка варианта: только если имя разрешается в зарегистрированный,
	// не-воздушный тип блока; иначе падает исходная идентичность
	spawnID := id
	if fall.VariantAfterFall != "" {
		if variantID, ok := block.GetByName(fall.VariantAfterFall); ok && variantID != block.AirBlockID {
			spawnID = variantID
		}
	}

	// Захват вспомогательных данных блока для переноса в сущность
	payload := w.CaptureBlockMetadata(pos)

	// Эффекты масштабируются конфигурацией типа и уходят коллаборатору
	if fall.DustIntensity > 0 || fall.FallSound != "" {
		w.EmitBlockEffects(pos, fall.DustIntensity, fall.FallSound)
	}

	w.RemoveBlock(pos)
	w.SpawnFallingBlock(FallingBlockSpawn{
		BlockID:         spawnID,
		Pos:             pos,
		Direction:       direction,
		Payload:         payload,
		ImpactDamageMul: fall.ImpactDamageMul,
		Origin:          pos,
	})
	spawnsCompleted.Inc()
}
