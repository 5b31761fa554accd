package block

import (
	"fmt"

	"github.com/annel0/voxel-physics/internal/vec"
)

// Face представляет грань блока
type Face uint8

const (
	FaceDown Face = iota
	FaceUp
	FaceNorth
	FaceSouth
	FaceWest
	FaceEast

	// FaceCount — количество граней; каждая карта грань→значение имеет ровно шесть слотов
	FaceCount = 6
)

// String возвращает код грани
func (f Face) String() string {
	switch f {
	case FaceDown:
		return "down"
	case FaceUp:
		return "up"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	case FaceEast:
		return "east"
	default:
		return "unknown"
	}
}

// ParseFace разбирает код грани. Неизвестный код — ошибка конфигурации,
// она должна остановить регистрацию блока, а не превратиться в умолчание.
func ParseFace(s string) (Face, error) {
	switch s {
	case "down":
		return FaceDown, nil
	case "up":
		return FaceUp, nil
	case "north":
		return FaceNorth, nil
	case "south":
		return FaceSouth, nil
	case "west":
		return FaceWest, nil
	case "east":
		return FaceEast, nil
	default:
		return 0, fmt.Errorf("неизвестный код грани: %q", s)
	}
}

// Offset возвращает смещение к соседнему блоку за этой гранью
func (f Face) Offset() vec.Vec3 {
	switch f {
	case FaceDown:
		return vec.Vec3{Y: -1}
	case FaceUp:
		return vec.Vec3{Y: 1}
	case FaceNorth:
		return vec.Vec3{Z: -1}
	case FaceSouth:
		return vec.Vec3{Z: 1}
	case FaceWest:
		return vec.Vec3{X: -1}
	case FaceEast:
		return vec.Vec3{X: 1}
	}
	return vec.Vec3{}
}

// Opposite возвращает противоположную грань
func (f Face) Opposite() Face {
	switch f {
	case FaceDown:
		return FaceUp
	case FaceUp:
		return FaceDown
	case FaceNorth:
		return FaceSouth
	case FaceSouth:
		return FaceNorth
	case FaceWest:
		return FaceEast
	case FaceEast:
		return FaceWest
	}
	return f
}

// HorizontalFaces возвращает четыре горизонтальные грани в фиксированном
// порядке обхода: запад, восток, север, юг
func HorizontalFaces() [4]Face {
	return [4]Face{FaceWest, FaceEast, FaceNorth, FaceSouth}
}

// AllFaces возвращает все шесть граней
func AllFaces() [FaceCount]Face {
	return [FaceCount]Face{FaceDown, FaceUp, FaceNorth, FaceSouth, FaceWest, FaceEast}
}
