package eventbus

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Типы событий подсистемы физики блоков
const (
	EventBlockFall     = "block.fall"     // Блок превратился в падающую сущность
	EventBlockEffects  = "block.effects"  // Пыль и звук падения
	EventBlockRejected = "block.rejected" // Установка блока отклонена
	EventEntitySettle  = "entity.settle"  // Падающая сущность приземлилась
	EventWorldSaved    = "world.saved"    // Мир сохранен
)

// Envelope описывает универсальный контейнер события.
// Все поля фиксированы для версиирования и трассировки.
type Envelope struct {
	ID            string            // Глобально уникальный идентификатор (UUID).
	Timestamp     time.Time         // Время создания события (UTC).
	Source        string            // Имя подсистемы-источника.
	EventType     string            // Тип события (block.fall, entity.settle…).
	Version       int               // Схема полезной нагрузки.
	CorrelationID string            // Для связывания цепочек.
	Priority      int               // 0=Low … 9=Critical (для backpressure).
	Payload       []byte            // Сериализованный JSON.
	Metadata      map[string]string // Произвольные метаданные.
}

// NewEnvelope собирает конверт с UUID и текущим временем.
// Полезная нагрузка сериализуется в JSON; ошибка сериализации — ошибка
// программиста, поэтому конверт уходит с пустой нагрузкой и без паники.
func NewEnvelope(source, eventType string, priority int, payload interface{}) *Envelope {
	data, err := json.Marshal(payload)
	if err != nil {
		data = nil
	}
	return &Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    source,
		EventType: eventType,
		Version:   1,
		Priority:  priority,
		Payload:   data,
	}
}
