package systems

import "github.com/Mizzalini/roguelike/internal/domain"

// MovementResult — результат вычисления движения.
type MovementResult struct {
	Dest      domain.Position
	HasMoved  bool
	BlockedBy *domain.Entity // Если врезались в кого-то (для бампа/атаки)
	IsWall    bool           // Если врезались в стену или край карты
}

// CalculateMove вычисляет исход шага. Не меняет состояние мира!
func CalculateMove(m *domain.GameMap, e *domain.Entity, dx, dy int) MovementResult {
	dest := e.Pos.Shift(dx, dy)
	res := MovementResult{Dest: dest}

	// 1. Границы и стены
	if !m.Walkable(dest.X, dest.Y) {
		res.IsWall = true
		return res
	}

	// 2. Блокирующие сущности
	if other := m.BlockingEntityAt(dest.X, dest.Y); other != nil && other.ID != e.ID {
		res.BlockedBy = other
		return res
	}

	res.HasMoved = true
	return res
}

// ApplyMove выполняет шаг, если он возможен. Неудачный шаг — тихий no-op:
// упереться в стену ожидаемо и часто, это не ошибка.
func ApplyMove(m *domain.GameMap, e *domain.Entity, dx, dy int) bool {
	res := CalculateMove(m, e, dx, dy)
	if !res.HasMoved {
		return false
	}
	e.Pos = res.Dest
	return true
}
