package block

import (
	"fmt"
)

// Box представляет параллелепипед в локальных координатах блока [0,1]³.
// Область крепления (attachment region) задается в канонической форме:
// привязана к нижней грани, ось Y — глубина от плоскости грани внутрь блока,
// оси X и Z — вдоль грани. RotateToFace поворачивает каноническую область
// к нужной грани.
type Box struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// FullFace — область крепления по умолчанию: вся нижняя грань блока
var FullFace = Box{MinX: 0, MinY: 0, MinZ: 0, MaxX: 1, MaxY: 0, MaxZ: 1}

// NewBox создает область, проверяя границы и порядок координат
func NewBox(minX, minY, minZ, maxX, maxY, maxZ float64) (Box, error) {
	b := Box{MinX: minX, MinY: minY, MinZ: minZ, MaxX: maxX, MaxY: maxY, MaxZ: maxZ}
	if minX > maxX || minY > maxY || minZ > maxZ {
		return Box{}, fmt.Errorf("область %v: min больше max", b)
	}
	if minX < 0 || minY < 0 || minZ < 0 || maxX > 1 || maxY > 1 || maxZ > 1 {
		return Box{}, fmt.Errorf("область %v: выходит за пределы блока [0,1]", b)
	}
	return b, nil
}

// RotateToFace поворачивает каноническую (нижнюю) область к указанной грани.
// Латеральная ось X канона остается горизонтальной, глубина Y канона
// направляется от плоскости грани внутрь блока.
func (b Box) RotateToFace(f Face) Box {
	switch f {
	case FaceDown:
		return b
	case FaceUp:
		return Box{
			MinX: b.MinX, MinY: 1 - b.MaxY, MinZ: b.MinZ,
			MaxX: b.MaxX, MaxY: 1 - b.MinY, MaxZ: b.MaxZ,
		}
	case FaceNorth:
		return Box{
			MinX: b.MinX, MinY: b.MinZ, MinZ: b.MinY,
			MaxX: b.MaxX, MaxY: b.MaxZ, MaxZ: b.MaxY,
		}
	case FaceSouth:
		return Box{
			MinX: b.MinX, MinY: b.MinZ, MinZ: 1 - b.MaxY,
			MaxX: b.MaxX, MaxY: b.MaxZ, MaxZ: 1 - b.MinY,
		}
	case FaceWest:
		return Box{
			MinX: b.MinY, MinY: b.MinZ, MinZ: b.MinX,
			MaxX: b.MaxY, MaxY: b.MaxZ, MaxZ: b.MaxX,
		}
	case FaceEast:
		return Box{
			MinX: 1 - b.MaxY, MinY: b.MinZ, MinZ: b.MinX,
			MaxX: 1 - b.MinY, MaxY: b.MaxZ, MaxZ: b.MaxX,
		}
	}
	return b
}

// Equals проверяет точное равенство областей
func (b Box) Equals(other Box) bool {
	return b == other
}

// Contains проверяет, что other целиком лежит внутри b
func (b Box) Contains(other Box) bool {
	return other.MinX >= b.MinX && other.MaxX <= b.MaxX &&
		other.MinY >= b.MinY && other.MaxY <= b.MaxY &&
		other.MinZ >= b.MinZ && other.MaxZ <= b.MaxZ
}
