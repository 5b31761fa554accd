package block

var (
	registry = make(map[BlockID]BlockBehavior)
	byName   = make(map[string]BlockID)
)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
	byName[behavior.Name()] = id
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// GetByName возвращает ID блока по полному имени вида "core:sand"
func GetByName(name string) (BlockID, bool) {
	id, exists := byName[name]
	return id, exists
}

// NameOf возвращает полное имя блока или пустую строку для незарегистрированного ID
func NameOf(id BlockID) string {
	if behavior, exists := registry[id]; exists {
		return behavior.Name()
	}
	return ""
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID            BlockID = iota // 0
	StoneBlockID                         // 1
	GrassBlockID                         // 2
	WaterBlockID                         // 3
	SandBlockID                          // 4
	DirtBlockID                          // 5
	GravelBlockID                        // 6
	ConcretePowderBlockID                // 7
	ConcreteBlockID                      // 8 - затвердевший вариант порошка

	// Для возможности расширения оставляем промежутки между категориями

	// Декоративные блоки (начиная с 100)
	ScaffoldingBlockID BlockID = 100 // Строительные леса

	// Интерактивные блоки (начиная с 200)
	AnvilBlockID BlockID = 200 // Наковальня
)
