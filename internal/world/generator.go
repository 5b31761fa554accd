package world

import (
	"github.com/annel0/voxel-physics/internal/util"
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// BiomeType представляет тип биома
type BiomeType int

const (
	BiomePlains BiomeType = iota
	BiomeDesert
)

// Константы высот для генерации
const (
	SeaLevel   = 24 // Уровень воды
	BaseHeight = 16 // Минимальная высота поверхности
	HeightSpan = 32 // Размах высот поверхности
)

// WorldGenerator генерирует ландшафт мира
type WorldGenerator struct {
	Seed       int64   // Сид для генерации шума
	NoiseScale float64 // Масштаб основного шума (высота)
	BiomeScale float64 // Масштаб шума биомов
}

// NewWorldGenerator создаёт новый генератор мира
func NewWorldGenerator(seed int64) *WorldGenerator {
	// Инициализируем генератор шума
	util.InitPerlinNoise(seed)

	return &WorldGenerator{
		Seed:       seed,
		NoiseScale: 0.05, // Настройка сглаженности ландшафта
		BiomeScale: 0.02, // Настройка размера биомов
	}
}

// GenerateChunk генерирует чанк по его координатам
func (wg *WorldGenerator) GenerateChunk(coords vec.Vec3) *Chunk {
	chunk := NewChunk(coords)

	globalStartX := coords.X << 4
	globalStartY := coords.Y << 4
	globalStartZ := coords.Z << 4

	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			column := vec.Vec2{X: globalStartX + x, Y: globalStartZ + z}

			height := wg.surfaceHeight(column)
			biome := wg.biomeAt(column)

			for y := 0; y < ChunkSize; y++ {
				globalY := globalStartY + y
				id := wg.blockAt(globalY, height, biome)
				if id == block.AirBlockID {
					continue
				}

				local := vec.Vec3{X: x, Y: y, Z: z}
				chunk.Blocks[x][y][z] = id

				behavior, exists := block.Get(id)
				if !exists {
					continue
				}
				if behavior.NeedsTick() {
					chunk.Tickable[local] = struct{}{}
				}
				if metadata := behavior.CreateMetadata(); len(metadata) > 0 {
					chunk.Metadata[local] = metadata
				}
			}
		}
	}

	return chunk
}

// surfaceHeight возвращает высоту поверхности для колонки (X, Z)
func (wg *WorldGenerator) surfaceHeight(column vec.Vec2) int {
	noiseX := float64(column.X) * wg.NoiseScale
	noiseZ := float64(column.Y) * wg.NoiseScale
	noise := util.PerlinNoise2D(noiseX, noiseZ, wg.Seed)
	return BaseHeight + int(noise*HeightSpan)
}

// biomeAt возвращает биом для колонки (X, Z)
func (wg *WorldGenerator) biomeAt(column vec.Vec2) BiomeType {
	noiseX := float64(column.X) * wg.BiomeScale
	noiseZ := float64(column.Y) * wg.BiomeScale
	if util.PerlinNoise2D(noiseX, noiseZ, wg.Seed+42) > 0.65 {
		return BiomeDesert
	}
	return BiomePlains
}

// blockAt возвращает блок для глобальной высоты в колонке с поверхностью height
func (wg *WorldGenerator) blockAt(globalY, height int, biome BiomeType) block.BlockID {
	switch {
	case globalY > height:
		if globalY <= SeaLevel {
			return block.WaterBlockID
		}
		return block.AirBlockID
	case globalY == height:
		if biome == BiomeDesert {
			return block.SandBlockID
		}
		if height < SeaLevel {
			return block.DirtBlockID
		}
		return block.GrassBlockID
	case globalY >= height-3:
		if biome == BiomeDesert {
			return block.SandBlockID
		}
		return block.DirtBlockID
	default:
		return block.StoneBlockID
	}
}
