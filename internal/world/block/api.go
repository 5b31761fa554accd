package block

import (
	"github.com/annel0/voxel-physics/internal/vec"
)

// BlockAPI определяет интерфейс для взаимодействия блоков с игровым миром.
// Этот интерфейс предоставляет блокам возможность читать и изменять состояние
// мира, включая получение и установку блоков, работу с метаданными и
// управление системой обновлений.
type BlockAPI interface {
	// GetBlockID возвращает идентификатор блока в указанной позиции.
	GetBlockID(pos vec.Vec3) BlockID

	// SetBlock устанавливает блок в указанной позиции.
	SetBlock(pos vec.Vec3, id BlockID)

	// RemoveBlock заменяет блок воздухом, отбрасывая его метаданные.
	RemoveBlock(pos vec.Vec3)

	// GetBlockMetadata возвращает значение метаданных блока по ключу.
	GetBlockMetadata(pos vec.Vec3, key string) interface{}

	// SetBlockMetadata устанавливает значение метаданных блока по ключу.
	SetBlockMetadata(pos vec.Vec3, key string, value interface{})

	// CaptureBlockMetadata возвращает копию всех метаданных блока.
	// Используется для переноса вспомогательных данных в падающую сущность.
	CaptureBlockMetadata(pos vec.Vec3) map[string]interface{}

	// ScheduleUpdateOnce помечает блок для разового обновления в следующем тике.
	// Используется для избежания лишних вычислений при массовых изменениях.
	ScheduleUpdateOnce(pos vec.Vec3)

	// TriggerNeighborUpdates запускает разовое обновление для всех шести
	// соседних блоков указанной позиции.
	TriggerNeighborUpdates(pos vec.Vec3)

	// Defer ставит одноразовую задачу в очередь следующего тика.
	// Управление возвращается сразу; задача выполняется на потоке тиков.
	Defer(task func())

	// IsAuthoritative возвращает true только на авторитетном хосте симуляции.
	// Неавторитетные представления мира не должны менять состояние блоков.
	IsAuthoritative() bool

	// FallingBlocksEnabled возвращает глобальный флаг конфигурации мира,
	// разрешающий превращение блоков в падающие сущности.
	FallingBlocksEnabled() bool
}
