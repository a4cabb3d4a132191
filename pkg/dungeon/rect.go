package dungeon

import "github.com/Mizzalini/roguelike/internal/domain"

// RectangularRoom — прямоугольная комната, заданная углами [X1,Y1]..[X2,Y2].
// Внешний периметр остается стеной; полом становится только внутренность
// (границы минус одна клетка), так что соседние комнаты не сливаются.
type RectangularRoom struct {
	X1, Y1, X2, Y2 int
}

// NewRoom строит комнату по верхнему левому углу и размерам.
func NewRoom(x, y, width, height int) RectangularRoom {
	return RectangularRoom{
		X1: x,
		Y1: y,
		X2: x + width,
		Y2: y + height,
	}
}

// Center возвращает центральную клетку комнаты.
func (r RectangularRoom) Center() domain.Position {
	return domain.Position{
		X: (r.X1 + r.X2) / 2,
		Y: (r.Y1 + r.Y2) / 2,
	}
}

// InnerBounds возвращает границы внутренности комнаты включительно:
// клетки [x1..x2] x [y1..y2], которые вырезаются под пол.
func (r RectangularRoom) InnerBounds() (x1, y1, x2, y2 int) {
	return r.X1 + 1, r.Y1 + 1, r.X2 - 1, r.Y2 - 1
}

// Intersects возвращает true, если комнаты пересекаются или касаются.
// Принятые комнаты попарно не пересекаются — кандидат, задевший любую
// из них, отбрасывается целиком.
func (r RectangularRoom) Intersects(other RectangularRoom) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
