package physics

import (
	"testing"

	"github.com/annel0/voxel-physics/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions_Defaults(t *testing.T) {
	profile, err := ParseOptions(map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, []block.Face{block.FaceDown}, profile.Rule.AttachableFaces(), "По умолчанию крепление только вниз")
	assert.Empty(t, profile.Rule.Exceptions(), "Список исключений по умолчанию пуст")
	assert.False(t, profile.Rule.AllowsUnstable())
	assert.Equal(t, block.FullFace, profile.Rule.Region(block.FaceDown), "Область по умолчанию — полная нижняя грань")

	assert.False(t, profile.Fall.FallSideways)
	assert.Equal(t, 0.3, profile.Fall.FallSidewaysChance)
	assert.Equal(t, 0.0, profile.Fall.DustIntensity)
	assert.Equal(t, "", profile.Fall.FallSound)
	assert.Equal(t, 1.0, profile.Fall.ImpactDamageMul)
	assert.Equal(t, "", profile.Fall.VariantAfterFall)
}

func TestParseOptions_PerFaceRegionIsolation(t *testing.T) {
	// Каждой грани — своя каноническая область с уникальной шириной
	areas := map[block.Face][]interface{}{
		block.FaceDown:  {0.00, 0.0, 0.0, 0.10, 0.0, 1.0},
		block.FaceUp:    {0.00, 0.0, 0.0, 0.20, 0.0, 1.0},
		block.FaceNorth: {0.00, 0.0, 0.0, 0.30, 0.0, 1.0},
		block.FaceSouth: {0.00, 0.0, 0.0, 0.40, 0.0, 1.0},
		block.FaceWest:  {0.00, 0.0, 0.0, 0.50, 0.0, 1.0},
		block.FaceEast:  {0.00, 0.0, 0.0, 0.60, 0.0, 1.0},
	}

	raw := make(map[string]interface{})
	for f, nums := range areas {
		raw[f.String()] = nums
	}

	profile, err := ParseOptions(map[string]interface{}{
		"attachmentAreas": raw,
	})
	require.NoError(t, err)

	seen := make(map[block.Box]block.Face)
	for f, nums := range areas {
		canonical, err := block.NewBox(
			nums[0].(float64), nums[1].(float64), nums[2].(float64),
			nums[3].(float64), nums[4].(float64), nums[5].(float64),
		)
		require.NoError(t, err)

		got := profile.Rule.Region(f)
		want := canonical.RotateToFace(f)
		assert.Equal(t, want, got, "Грань %s: область не совпадает с заданной", f)

		// Утечек между гранями нет: все шесть областей различны
		if prev, dup := seen[got]; dup {
			t.Errorf("Область грани %s совпала с областью грани %s", f, prev)
		}
		seen[got] = f
	}
}

func TestParseOptions_PartialAreasFallBackToDefault(t *testing.T) {
	profile, err := ParseOptions(map[string]interface{}{
		"attachmentArea": []interface{}{0.25, 0.0, 0.25, 0.75, 0.0, 0.75},
		"attachmentAreas": map[string]interface{}{
			"north": []interface{}{0.0, 0.0, 0.0, 1.0, 0.0, 0.5},
		},
	})
	require.NoError(t, err)

	defaultArea, _ := block.NewBox(0.25, 0, 0.25, 0.75, 0, 0.75)
	northArea, _ := block.NewBox(0, 0, 0, 1, 0, 0.5)

	assert.Equal(t, northArea.RotateToFace(block.FaceNorth), profile.Rule.Region(block.FaceNorth))
	assert.Equal(t, defaultArea.RotateToFace(block.FaceDown), profile.Rule.Region(block.FaceDown))
	assert.Equal(t, defaultArea.RotateToFace(block.FaceEast), profile.Rule.Region(block.FaceEast))
}

func TestParseOptions_FailFast(t *testing.T) {
	cases := []struct {
		name string
		opts map[string]interface{}
	}{
		{"неизвестная опция", map[string]interface{}{"fallsideways": true}},
		{"неизвестная грань", map[string]interface{}{"attachableFaces": []interface{}{"down", "bottom"}}},
		{"пустой список граней", map[string]interface{}{"attachableFaces": []interface{}{}}},
		{"шанс вне диапазона", map[string]interface{}{"fallSidewaysChance": 1.5}},
		{"отрицательный шанс", map[string]interface{}{"fallSidewaysChance": -0.1}},
		{"отрицательная пыль", map[string]interface{}{"dustIntensity": -1.0}},
		{"отрицательный множитель", map[string]interface{}{"impactDamageMul": -2.0}},
		{"кривая ссылка звука", map[string]interface{}{"fallSound": "block_fall"}},
		{"wildcard в варианте", map[string]interface{}{"variantAfterFalling": "core:*"}},
		{"кривой шаблон исключения", map[string]interface{}{"exceptions": []interface{}{"core:sand:extra"}}},
		{"область не из шести чисел", map[string]interface{}{"attachmentArea": []interface{}{0.0, 0.0, 1.0}}},
		{"область за пределами блока", map[string]interface{}{"attachmentArea": []interface{}{0.0, 0.0, 0.0, 2.0, 0.0, 1.0}}},
		{"неизвестная грань в областях", map[string]interface{}{"attachmentAreas": map[string]interface{}{"top": []interface{}{0.0, 0.0, 0.0, 1.0, 0.0, 1.0}}}},
		{"не-bool в allowUnstablePlacement", map[string]interface{}{"allowUnstablePlacement": "yes"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseOptions(c.opts)
			assert.Error(t, err, "Опции %v должны отклоняться", c.opts)
		})
	}
}

func TestParseOptions_IntegersAccepted(t *testing.T) {
	// YAML может дать целые числа вместо float
	profile, err := ParseOptions(map[string]interface{}{
		"fallSidewaysChance": 1,
		"dustIntensity":      2,
		"impactDamageMul":    0,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, profile.Fall.FallSidewaysChance)
	assert.Equal(t, 2.0, profile.Fall.DustIntensity)
	assert.Equal(t, 0.0, profile.Fall.ImpactDamageMul)
}
