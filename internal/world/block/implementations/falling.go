package implementations

import (
	"github.com/annel0/voxel-physics/internal/vec"
	"github.com/annel0/voxel-physics/internal/world/block"
	"github.com/annel0/voxel-physics/internal/world/physics"
)

// Общий триггер падения для всех сыпучих блоков.
// Устанавливается при старте сервера до первого тика мира.
var fallTrigger *physics.FallTrigger

// SetFallTrigger задает триггер падения, используемый сыпучими блоками
func SetFallTrigger(t *physics.FallTrigger) {
	fallTrigger = t
}

// tryFalling запускает проверку опоры, если API мира поддерживает
// операции подсистемы физики. Мок-API без этих операций игнорируется.
func tryFalling(api block.BlockAPI, pos vec.Vec3) {
	if fallTrigger == nil {
		return
	}
	w, ok := api.(physics.World)
	if !ok {
		return
	}
	fallTrigger.TryFalling(w, pos)
}
