package implementations

import (
	"github.com/annel0/voxel-physics/internal/world/block"
	"github.com/annel0/voxel-physics/internal/world/physics"
)

// Регистрируем все типы блоков при импорте пакета
func init() {
	// Базовые блоки
	block.Register(block.AirBlockID, &AirBehavior{})
	block.Register(block.StoneBlockID, &StoneBehavior{})
	block.Register(block.GrassBlockID, &GrassBehavior{})
	block.Register(block.WaterBlockID, &WaterBehavior{})
	block.Register(block.DirtBlockID, &DirtBehavior{})

	// Сыпучие блоки
	block.Register(block.SandBlockID, &SandBehavior{})
	block.Register(block.GravelBlockID, &GravelBehavior{})
	block.Register(block.ConcretePowderBlockID, &ConcretePowderBehavior{})
	block.Register(block.ConcreteBlockID, &ConcreteBehavior{})
	block.Register(block.ScaffoldingBlockID, &ScaffoldingBehavior{})
	block.Register(block.AnvilBlockID, &AnvilBehavior{})

	// Встроенные профили устойчивости. Профили из assets/blocks
	// загружаются поверх и имеют приоритет.
	physics.RegisterProfile(block.SandBlockID, physics.MustOptions(map[string]interface{}{
		"dustIntensity": 1.0,
		"fallSound":     "core:sand_fall",
	}))
	physics.RegisterProfile(block.GravelBlockID, physics.MustOptions(map[string]interface{}{
		"fallSideways":  true,
		"dustIntensity": 1.0,
		"fallSound":     "core:gravel_fall",
	}))
	physics.RegisterProfile(block.ConcretePowderBlockID, physics.MustOptions(map[string]interface{}{
		"dustIntensity":       0.5,
		"variantAfterFalling": "core:concrete",
	}))
	physics.RegisterProfile(block.ScaffoldingBlockID, physics.MustOptions(map[string]interface{}{
		"fallSideways":       true,
		"fallSidewaysChance": 0.5,
		"attachableFaces":    []interface{}{"down", "west", "east", "north", "south"},
		"exceptions":         []interface{}{"core:scaffolding"},
	}))
	physics.RegisterProfile(block.AnvilBlockID, physics.MustOptions(map[string]interface{}{
		"impactDamageMul": 2.0,
		"fallSound":       "core:anvil_land",
	}))
}
