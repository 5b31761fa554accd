package util

import (
	"github.com/aquilax/go-perlin"
)

// Параметры шума подобраны под генератор рельефа: три октавы дают
// холмы без резких обрывов, по которым сыпучие блоки оседают предсказуемо.
const (
	noiseAlpha   = 2.0 // Сглаживание
	noiseBeta    = 2.0 // Частота
	noiseOctaves = 3
)

var perlinNoise *perlin.Perlin

// InitPerlinNoise инициализирует генератор шума Перлина с указанным сидом
func InitPerlinNoise(seed int64) {
	perlinNoise = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
}

// PerlinNoise2D возвращает нормализованное значение шума в диапазоне [0, 1].
// Ленивая инициализация с переданным сидом покрывает вызовы до старта мира.
func PerlinNoise2D(x, y float64, seed int64) float64 {
	if perlinNoise == nil {
		InitPerlinNoise(seed)
	}

	// Noise2D возвращает значение в диапазоне [-1, 1]
	noise := perlinNoise.Noise2D(x, y)
	return (noise + 1.0) / 2.0
}
