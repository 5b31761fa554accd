package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/annel0/voxel-physics/internal/logging"
)

// RedisLandingRepo хранит журнал приземлений в Redis-списке.
// Подходит для общего журнала нескольких игровых узлов.
type RedisLandingRepo struct {
	client  *redis.Client
	key     string
	maxSize int64
}

// RedisConfig содержит настройки подключения к Redis
type RedisConfig struct {
	Addr     string // Адрес Redis сервера
	Password string // Пароль (пустой если не требуется)
	DB       int    // Номер базы данных
	Key      string // Ключ списка журнала
	MaxSize  int64  // Максимальная длина журнала
}

// DefaultRedisConfig возвращает конфигурацию по умолчанию
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:    "localhost:6379",
		Key:     "physics:landings",
		MaxSize: 100000,
	}
}

// NewRedisLandingRepo создаёт журнал приземлений поверх Redis
func NewRedisLandingRepo(config *RedisConfig) (*RedisLandingRepo, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("подключение к Redis: %w", err)
	}

	logging.Info("🔴 Журнал приземлений подключен к Redis %s", config.Addr)
	return &RedisLandingRepo{
		client:  client,
		key:     config.Key,
		maxSize: config.MaxSize,
	}, nil
}

// Save добавляет запись в начало списка и подрезает его до maxSize.
func (r *RedisLandingRepo) Save(ctx context.Context, rec LandingRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("сериализация записи: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, data)
	pipe.LTrim(ctx, r.key, 0, r.maxSize-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("запись в Redis: %w", err)
	}
	return nil
}

// Recent возвращает последние записи журнала, не более limit.
func (r *RedisLandingRepo) Recent(ctx context.Context, limit int) ([]LandingRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	items, err := r.client.LRange(ctx, r.key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("чтение из Redis: %w", err)
	}

	records := make([]LandingRecord, 0, len(items))
	for _, item := range items {
		var rec LandingRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			logging.Warn("Поврежденная запись журнала приземлений: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Count возвращает длину журнала.
func (r *RedisLandingRepo) Count(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, r.key).Result()
}

// Close закрывает подключение к Redis.
func (r *RedisLandingRepo) Close() error {
	return r.client.Close()
}
