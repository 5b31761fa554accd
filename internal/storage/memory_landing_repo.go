package storage

import (
	"context"
	"sync"
)

// MemoryLandingRepo реализует LandingRepo в памяти.
// Используется как fallback, когда Redis недоступен,
// или для CI/локальной разработки без внешних сервисов.
// ВНИМАНИЕ: Данные теряются при перезапуске сервера!
type MemoryLandingRepo struct {
	mu      sync.RWMutex
	records []LandingRecord
	maxSize int
}

// NewMemoryLandingRepo создает новый журнал приземлений в памяти.
// maxSize ограничивает длину журнала; старые записи вытесняются.
func NewMemoryLandingRepo(maxSize int) *MemoryLandingRepo {
	if maxSize <= 0 {
		maxSize = 10000
	}
	return &MemoryLandingRepo{
		maxSize: maxSize,
	}
}

// Save добавляет запись о приземлении в журнал.
func (r *MemoryLandingRepo) Save(ctx context.Context, rec LandingRecord) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	if len(r.records) > r.maxSize {
		r.records = r.records[len(r.records)-r.maxSize:]
	}
	return nil
}

// Recent возвращает последние записи журнала, не более limit.
func (r *MemoryLandingRepo) Recent(ctx context.Context, limit int) ([]LandingRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}

	// Последние записи в обратном хронологическом порядке
	result := make([]LandingRecord, 0, limit)
	for i := len(r.records) - 1; i >= len(r.records)-limit; i-- {
		result = append(result, r.records[i])
	}
	return result, nil
}

// Count возвращает текущее количество записей в журнале.
func (r *MemoryLandingRepo) Count(ctx context.Context) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.records)), nil
}

// Close ничего не освобождает для репозитория в памяти.
func (r *MemoryLandingRepo) Close() error {
	return nil
}
