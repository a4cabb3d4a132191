package dungeon

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

// Params — параметры генерации уровня. Передаются явно, без глобалов:
// один и тот же Params + Seed всегда дает байт-идентичную карту.
type Params struct {
	MapWidth           int
	MapHeight          int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	Seed               int64
}

// DefaultParams возвращает параметры по умолчанию.
func DefaultParams() Params {
	return Params{
		MapWidth:           80,
		MapHeight:          45,
		MaxRooms:           30,
		RoomMinSize:        6,
		RoomMaxSize:        10,
		MaxMonstersPerRoom: 2,
		Seed:               1,
	}
}

// Generate создает населенный уровень и возвращает карту, ID игрока
// и список принятых комнат.
//
// Алгоритм: до MaxRooms попыток разместить случайную комнату; кандидат,
// пересекающий уже принятую комнату, просто отбрасывается (попытка
// сгорает). Первая принятая комната получает игрока в центре, каждая
// следующая соединяется коридором с центром предыдущей.
func Generate(p Params) (*domain.GameMap, types.EntityID, []RectangularRoom) {
	rng := rand.New(rand.NewSource(p.Seed))

	m := domain.NewGameMap(p.MapWidth, p.MapHeight)
	floor := domain.NewFloorTile()

	var rooms []RectangularRoom
	playerID := types.NilEntityID

	for attempt := 0; attempt < p.MaxRooms; attempt++ {
		roomWidth := randRange(rng, p.RoomMinSize, p.RoomMaxSize)
		roomHeight := randRange(rng, p.RoomMinSize, p.RoomMaxSize)

		x := randRange(rng, 0, p.MapWidth-roomWidth-1)
		y := randRange(rng, 0, p.MapHeight-roomHeight-1)

		newRoom := NewRoom(x, y, roomWidth, roomHeight)

		rejected := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}

		// Вырезаем внутренность под пол
		ix1, iy1, ix2, iy2 := newRoom.InnerBounds()
		for ty := iy1; ty <= iy2; ty++ {
			for tx := ix1; tx <= ix2; tx++ {
				m.SetTile(tx, ty, floor)
			}
		}

		if len(rooms) == 0 {
			playerID = m.Spawn(PlayerTemplate.Build(), newRoom.Center())
		} else {
			// Коридор к центру предыдущей принятой комнаты
			carveTunnel(m, rng, rooms[len(rooms)-1].Center(), newRoom.Center())
		}

		placeMonsters(m, rng, newRoom, p.MaxMonstersPerRoom)

		rooms = append(rooms, newRoom)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"seed":      p.Seed,
		"rooms":     len(rooms),
	}).Debug("Dungeon generated.")

	return m, playerID, rooms
}

// carveTunnel прокладывает Г-образный коридор из двух отрезков Брезенхэма.
// Монетка выбирает, где будет угол: (end.X, start.Y) или (start.X, end.Y).
func carveTunnel(m *domain.GameMap, rng *rand.Rand, start, end domain.Position) {
	floor := domain.NewFloorTile()

	var corner domain.Position
	if rng.Intn(2) == 0 {
		corner = domain.Position{X: end.X, Y: start.Y}
	} else {
		corner = domain.Position{X: start.X, Y: end.Y}
	}

	for _, pos := range bresenham(start, corner) {
		m.SetTile(pos.X, pos.Y, floor)
	}
	for _, pos := range bresenham(corner, end) {
		m.SetTile(pos.X, pos.Y, floor)
	}
}

// placeMonsters расставляет 0..max монстров по случайным клеткам
// внутренности комнаты. Занятая клетка пропускается (монстров выйдет
// меньше). Виды делятся фиксированно: 80% орки, 20% тролли.
func placeMonsters(m *domain.GameMap, rng *rand.Rand, room RectangularRoom, maxMonsters int) {
	if maxMonsters <= 0 {
		return
	}
	count := rng.Intn(maxMonsters + 1)

	ix1, iy1, ix2, iy2 := room.InnerBounds()

	for i := 0; i < count; i++ {
		pos := domain.Position{
			X: randRange(rng, ix1, ix2),
			Y: randRange(rng, iy1, iy2),
		}

		if m.BlockingEntityAt(pos.X, pos.Y) != nil {
			continue
		}

		if rng.Float64() < 0.8 {
			m.Spawn(OrcTemplate.Build(), pos)
		} else {
			m.Spawn(TrollTemplate.Build(), pos)
		}
	}
}

// bresenham возвращает клетки отрезка, включая оба конца.
func bresenham(from, to domain.Position) []domain.Position {
	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)

	sx := 1
	if from.X > to.X {
		sx = -1
	}
	sy := 1
	if from.Y > to.Y {
		sy = -1
	}

	line := make([]domain.Position, 0, dx+dy+1)
	x, y := from.X, from.Y
	errTerm := dx - dy

	for {
		line = append(line, domain.Position{X: x, Y: y})
		if x == to.X && y == to.Y {
			return line
		}
		e2 := 2 * errTerm
		if e2 > -dy {
			errTerm -= dy
			x += sx
		}
		if e2 < dx {
			errTerm += dx
			y += sy
		}
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	// Диапазон включительный с обоих концов
	return rng.Intn(max-min+1) + min
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
