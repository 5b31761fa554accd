package world

import (
	"time"

	"github.com/annel0/voxel-physics/internal/vec"
)

// Типизированные полезные нагрузки событий мира. Каждая структура
// сериализуется в JSON внутри eventbus.Envelope соответствующего типа;
// внешние потребители (лог-слушатель, клиенты JetStream) разбирают
// нагрузку по этим схемам.

// BlockFallEvent публикуется при превращении блока в падающую сущность
// (eventbus.EventBlockFall).
type BlockFallEvent struct {
	EntityID  uint64   `json:"entity_id"`
	Block     string   `json:"block"` // Полное имя вида "core:sand"
	Origin    vec.Vec3 `json:"origin"`
	Direction vec.Vec3 `json:"direction"`
}

// BlockEffectsEvent описывает эффекты падения блока: интенсивность пыли
// и ссылку на звук. Рендеринг выполняет внешний потребитель шины событий
// (eventbus.EventBlockEffects).
type BlockEffectsEvent struct {
	Position      vec.Vec3 `json:"position"`
	DustIntensity float64  `json:"dust_intensity"`
	FallSound     string   `json:"fall_sound,omitempty"`
}

// BlockRejectedEvent публикуется при отказе установки блока
// (eventbus.EventBlockRejected).
type BlockRejectedEvent struct {
	Block    string   `json:"block"`
	Position vec.Vec3 `json:"position"`
	Reason   string   `json:"reason"` // Символьный код причины
}

// EntitySettleEvent публикуется при приземлении падающей сущности
// (eventbus.EventEntitySettle).
type EntitySettleEvent struct {
	EntityID        uint64    `json:"entity_id"`
	Block           string    `json:"block"`
	Origin          vec.Vec3  `json:"origin"`
	Landing         vec.Vec3  `json:"landing"`
	ImpactDamageMul float64   `json:"impact_damage_mul"`
	Time            time.Time `json:"time"`
}

// WorldSavedEvent публикуется после сохранения активных чанков
// (eventbus.EventWorldSaved).
type WorldSavedEvent struct {
	Chunks int  `json:"chunks"`
	Forced bool `json:"forced"`
}
