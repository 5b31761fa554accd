package physics

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// World расширяет block.BlockAPI операциями, которые нужны только
// подсистеме падающих блоков: поиск существующих падающих сущностей,
// спаун и эмиссия эффектов. Реализуется менеджером мира.
type World interface {
	block.BlockAPI

	// HasFallingBlockAt возвращает true, если в радиусе radius от origin
	// уже существует падающая сущность, чья записанная точка происхождения
	// равна origin.
	HasFallingBlockAt(origin vec.Vec3, radius float64) bool

	// SpawnFallingBlock создает падающую сущность по заявке.
	SpawnFallingBlock(spawn FallingBlockSpawn)

	// EmitBlockEffects передает визуально-звуковые эффекты падения
	// внешнему коллаборатору (пыль и звук никогда не рендерятся здесь).
	EmitBlockEffects(pos vec.Vec3, dustIntensity float64, fallSound string)
}

// FallingBlockSpawn — заявка на спаун падающей сущности
type FallingBlockSpawn struct {
	BlockID         block.BlockID          // Идентичность падающего блока (после подстановки варианта)
	Pos             vec.Vec3               // Позиция спауна
	Direction       vec.Vec3               // Направление падения (вниз или вбок)
	Payload         map[string]interface{} // Захваченные метаданные исходного блока
	ImpactDamageMul float64                // Множитель урона при приземлении
	Origin          vec.Vec3               // Точка происхождения для защиты от дублей
}
