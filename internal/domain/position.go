package domain

// Position — координата клетки на карте.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением, не меняя текущую
// (Go передает структуры по значению).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev возвращает шахматное расстояние до другой точки:
// число ходов короля, диагональ считается за один шаг.
func (p Position) Chebyshev(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ).
func (p Position) IsAdjacent(other Position) bool {
	return p != other && p.Chebyshev(other) <= 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
