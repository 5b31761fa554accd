package physics

import (
	"fmt"

	"github.com/annel0/voxel-physics/internal/pattern"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// StabilityRule описывает правила крепления блока: по одной области на
// каждую из шести граней, список исключений и флаг безусловной установки.
// Создается один раз при регистрации типа блока и не изменяется.
type StabilityRule struct {
	regions    [block.FaceCount]block.Box // Повернутые области, все шесть слотов заполнены
	faces      []block.Face               // Грани, допускающие крепление
	exceptions []pattern.Pattern          // Шаблоны блоков, освобожденных от проверки
	unstable   bool                       // Разрешена установка без опоры
}

// Region возвращает область крепления для грани (уже повернутую к ней)
func (r *StabilityRule) Region(f block.Face) block.Box {
	return r.regions[f]
}

// AttachableFaces возвращает грани, по которым блок может крепиться
func (r *StabilityRule) AttachableFaces() []block.Face {
	return r.faces
}

// Exceptions возвращает шаблоны исключений
func (r *StabilityRule) Exceptions() []pattern.Pattern {
	return r.exceptions
}

// AllowsUnstable возвращает true, если блок можно ставить без опоры
func (r *StabilityRule) AllowsUnstable() bool {
	return r.unstable
}

// FallBehavior описывает параметры падения типа блока.
// Создается один раз при регистрации и не изменяется.
type FallBehavior struct {
	FallSideways       bool    // Может ли блок сползать вбок
	FallSidewaysChance float64 // Вероятность бокового сползания [0,1]
	DustIntensity      float64 // Интенсивность пыли при падении (>= 0)
	FallSound          string  // Ссылка на звук падения ("core:block_fall") или ""
	ImpactDamageMul    float64 // Множитель урона при приземлении (>= 0)
	VariantAfterFall   string  // Имя блока-замены для падающей сущности или ""
}

// Profile объединяет правила крепления и параметры падения одного типа блока
type Profile struct {
	Rule *StabilityRule
	Fall *FallBehavior
}

// Значения по умолчанию для опций конфигурации
const (
	defaultSidewaysChance  = 0.3
	defaultImpactDamageMul = 1.0
)

// ParseOptions разбирает карту опций конфигурации типа блока в Profile.
// Нераспознанные ключи, неизвестные коды граней и некорректные ссылки —
// ошибка: молчаливый откат к умолчанию замаскировал бы опечатку автора
// контента. Умолчания применяются только для отсутствующих ключей.
func ParseOptions(opts map[string]interface{}) (*Profile, error) {
	rule := &StabilityRule{
		faces:    []block.Face{block.FaceDown},
		unstable: false,
	}
	fall := &FallBehavior{
		FallSidewaysChance: defaultSidewaysChance,
		ImpactDamageMul:    defaultImpactDamageMul,
	}

	// Сначала область по умолчанию: она нужна для незаполненных слотов
	defaultArea := block.FullFace
	if raw, ok := opts["attachmentArea"]; ok {
		area, err := parseArea(raw)
		if err != nil {
			return nil, fmt.Errorf("attachmentArea: %w", err)
		}
		defaultArea = area
	}

	perFace := make(map[block.Face]block.Box)

	for key, raw := range opts {
		switch key {
		case "attachmentArea":
			// Уже разобрана выше

		case "attachableFaces":
			items, ok := raw.([]interface{})
			if !ok {
				return nil, fmt.Errorf("attachableFaces: ожидается список кодов граней, получено %T", raw)
			}
			if len(items) == 0 {
				return nil, fmt.Errorf("attachableFaces: список пуст")
			}
			faces := make([]block.Face, 0, len(items))
			for _, item := range items {
				code, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("attachableFaces: код грани должен быть строкой, получено %T", item)
				}
				f, err := block.ParseFace(code)
				if err != nil {
					return nil, fmt.Errorf("attachableFaces: %w", err)
				}
				faces = append(faces, f)
			}
			rule.faces = faces

		case "attachmentAreas":
			areas, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("attachmentAreas: ожидается карта грань→область, получено %T", raw)
			}
			for code, rawArea := range areas {
				f, err := block.ParseFace(code)
				if err != nil {
					return nil, fmt.Errorf("attachmentAreas: %w", err)
				}
				area, err := parseArea(rawArea)
				if err != nil {
					return nil, fmt.Errorf("attachmentAreas[%s]: %w", code, err)
				}
				perFace[f] = area
			}

		case "exceptions":
			items, ok := raw.([]interface{})
			if !ok {
				return nil, fmt.Errorf("exceptions: ожидается список шаблонов, получено %T", raw)
			}
			strs := make([]string, 0, len(items))
			for _, item := range items {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("exceptions: шаблон должен быть строкой, получено %T", item)
				}
				strs = append(strs, s)
			}
			patterns, err := pattern.ParseList(strs)
			if err != nil {
				return nil, fmt.Errorf("exceptions: %w", err)
			}
			rule.exceptions = patterns

		case "allowUnstablePlacement":
			b, ok := raw.(bool)
			if !ok {
				return nil, fmt.Errorf("allowUnstablePlacement: ожидается bool, получено %T", raw)
			}
			rule.unstable = b

		case "fallSideways":
			b, ok := raw.(bool)
			if !ok {
				return nil, fmt.Errorf("fallSideways: ожидается bool, получено %T", raw)
			}
			fall.FallSideways = b

		case "fallSidewaysChance":
			v, ok := floatOption(raw)
			if !ok {
				return nil, fmt.Errorf("fallSidewaysChance: ожидается число, получено %T", raw)
			}
			if v < 0 || v > 1 {
				return nil, fmt.Errorf("fallSidewaysChance: %v вне диапазона [0,1]", v)
			}
			fall.FallSidewaysChance = v

		case "dustIntensity":
			v, ok := floatOption(raw)
			if !ok {
				return nil, fmt.Errorf("dustIntensity: ожидается число, получено %T", raw)
			}
			if v < 0 {
				return nil, fmt.Errorf("dustIntensity: %v меньше нуля", v)
			}
			fall.DustIntensity = v

		case "fallSound":
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("fallSound: ожидается строка, получено %T", raw)
			}
			if err := pattern.ValidateReference(s); err != nil {
				return nil, fmt.Errorf("fallSound: %w", err)
			}
			fall.FallSound = s

		case "impactDamageMul":
			v, ok := floatOption(raw)
			if !ok {
				return nil, fmt.Errorf("impactDamageMul: ожидается число, получено %T", raw)
			}
			if v < 0 {
				return nil, fmt.Errorf("impactDamageMul: %v меньше нуля", v)
			}
			fall.ImpactDamageMul = v

		case "variantAfterFalling":
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("variantAfterFalling: ожидается строка, получено %T", raw)
			}
			if err := pattern.ValidateReference(s); err != nil {
				return nil, fmt.Errorf("variantAfterFalling: %w", err)
			}
			// Само разрешение имени откладывается до спауна: блок-замена
			// может регистрироваться позже текущего
			fall.VariantAfterFall = s

		default:
			return nil, fmt.Errorf("нераспознанная опция %q", key)
		}
	}

	// Заполняем все шесть слотов: явная область или область по умолчанию,
	// повернутая к своей грани
	for _, f := range block.AllFaces() {
		area := defaultArea
		if explicit, ok := perFace[f]; ok {
			area = explicit
		}
		rule.regions[f] = area.RotateToFace(f)
	}

	return &Profile{Rule: rule, Fall: fall}, nil
}

// MustOptions разбирает опции, объявленные в коде.
// Паника допустима: ошибка здесь — ошибка программиста, а не автора контента.
func MustOptions(opts map[string]interface{}) *Profile {
	p, err := ParseOptions(opts)
	if err != nil {
		panic(err)
	}
	return p
}

// parseArea разбирает область из списка шести чисел [minX minY minZ maxX maxY maxZ]
func parseArea(raw interface{}) (block.Box, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return block.Box{}, fmt.Errorf("ожидается список из шести чисел, получено %T", raw)
	}
	if len(items) != 6 {
		return block.Box{}, fmt.Errorf("ожидается шесть чисел, получено %d", len(items))
	}
	nums := make([]float64, 6)
	for i, item := range items {
		v, ok := floatOption(item)
		if !ok {
			return block.Box{}, fmt.Errorf("элемент %d: ожидается число, получено %T", i, item)
		}
		nums[i] = v
	}
	return block.NewBox(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
}

// floatOption приводит числовые значения YAML/JSON к float64
func floatOption(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
