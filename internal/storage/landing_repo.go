package storage

import (
	"context"
	"time"

	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// LandingRecord описывает одно приземление падающего блока
type LandingRecord struct {
	BlockID block.BlockID `json:"block_id"` // Идентичность приземлившегося блока
	Origin  vec.Vec3      `json:"origin"`   // Точка происхождения падения
	Landing vec.Vec3      `json:"landing"`  // Точка приземления
	Time    time.Time     `json:"time"`     // Время приземления (UTC)
}

// LandingRepo определяет интерфейс журнала приземлений падающих блоков.
// Журнал используется статистикой и отладкой карт: по нему видно, откуда
// и куда сыплются блоки.
type LandingRepo interface {
	// Save добавляет запись о приземлении в журнал.
	Save(ctx context.Context, rec LandingRecord) error

	// Recent возвращает последние записи журнала, не более limit.
	Recent(ctx context.Context, limit int) ([]LandingRecord, error)

	// Count возвращает общее количество записей в журнале.
	Count(ctx context.Context) (int64, error)

	// Close освобождает ресурсы хранилища.
	Close() error
}
