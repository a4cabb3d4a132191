package domain

import "github.com/Mizzalini/roguelike/internal/core/types"

// slot — ячейка арены сущностей. Поколение защищает от устаревших ID:
// после освобождения слота старые ссылки перестают резолвиться.
type slot struct {
	ent  Entity
	gen  uint32
	live bool
}

// GameMap владеет сеткой тайлов, битсетами видимости/исследованности
// и всеми сущностями уровня. Сущности лежат в плотной арене и адресуются
// стабильными генерационными ID; обратных указателей "сущность -> карта" нет,
// принадлежность определяется присутствием живого слота.
//
// Доступ строго однопоточный: карту мутируют только выполнение действий
// и ходы AI, последовательно внутри одного хода.
type GameMap struct {
	Width  int
	Height int

	// Tiles — сетка в row-major порядке, индекс Y*Width+X.
	Tiles []Tile

	// Visible — клетки в текущем поле зрения игрока (пересчет раз в ход).
	// Explored — накопленное объединение всех Visible за сессию,
	// монотонно неубывающее.
	Visible  []bool
	Explored []bool

	slots []slot
	free  []uint32
}

// NewGameMap создает карту указанного размера, целиком залитую стеной.
func NewGameMap(width, height int) *GameMap {
	m := &GameMap{
		Width:    width,
		Height:   height,
		Tiles:    make([]Tile, width*height),
		Visible:  make([]bool, width*height),
		Explored: make([]bool, width*height),
	}
	wall := NewWallTile()
	for i := range m.Tiles {
		m.Tiles[i] = wall
	}
	return m
}

// Index возвращает линейный индекс клетки.
func (m *GameMap) Index(x, y int) int {
	return y*m.Width + x
}

// InBounds проверяет, лежит ли клетка внутри карты.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt возвращает тайл клетки. Вне границ — стена.
func (m *GameMap) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return NewWallTile()
	}
	return m.Tiles[m.Index(x, y)]
}

// SetTile кладет тайл в клетку. Используется только генератором.
func (m *GameMap) SetTile(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.Tiles[m.Index(x, y)] = t
	}
}

// Walkable возвращает true, если на клетке можно стоять.
func (m *GameMap) Walkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[m.Index(x, y)].Walkable
}

// Transparent возвращает true, если клетка пропускает взгляд.
// Выход за границы считается непрозрачным.
func (m *GameMap) Transparent(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[m.Index(x, y)].Transparent
}

// --- Арена сущностей ---

// Spawn клонирует шаблон сущности в арену на указанную позицию
// и возвращает ее стабильный ID. Компоненты копируются глубоко:
// порожденная сущность не делит состояние с шаблоном.
func (m *GameMap) Spawn(proto Entity, pos Position) types.EntityID {
	ent := proto
	ent.Pos = pos
	if proto.Fighter != nil {
		f := *proto.Fighter
		ent.Fighter = &f
	}
	if proto.AI != nil {
		ai := *proto.AI
		ai.Path = append([]Position(nil), proto.AI.Path...)
		ent.AI = &ai
	}

	var idx uint32
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		// Поколение 1 — первое валидное: нулевой ID никогда не резолвится
		m.slots = append(m.slots, slot{gen: 1})
		idx = uint32(len(m.slots) - 1)
	}

	s := &m.slots[idx]
	s.ent = ent
	s.live = true
	s.ent.ID = types.PackEntityID(s.gen, idx)
	return s.ent.ID
}

// Get возвращает сущность по ID или nil, если ID устарел либо чужой.
func (m *GameMap) Get(id types.EntityID) *Entity {
	idx := id.Index()
	if id.IsNil() || int(idx) >= len(m.slots) {
		return nil
	}
	s := &m.slots[idx]
	if !s.live || s.gen != id.Generation() {
		return nil
	}
	return &s.ent
}

// Remove освобождает слот сущности. Возвращает false для устаревшего ID.
// Поколение слота растет, так что все выданные ранее ссылки протухают.
func (m *GameMap) Remove(id types.EntityID) bool {
	if m.Get(id) == nil {
		return false
	}
	idx := id.Index()
	s := &m.slots[idx]
	s.ent = Entity{}
	s.live = false
	s.gen++
	m.free = append(m.free, idx)
	return true
}

// Transfer атомарно переносит сущность на другую карту: удаление из старой
// арены и вставка в новую — один шаг, промежуточного состояния
// "на двух картах" или "нигде" не наблюдается. Возвращает новый ID.
func (m *GameMap) Transfer(id types.EntityID, dst *GameMap, pos Position) (types.EntityID, bool) {
	ent := m.Get(id)
	if ent == nil || dst == nil {
		return types.NilEntityID, false
	}
	moved := *ent
	m.Remove(id)
	return dst.Spawn(moved, pos), true
}

// ForEach обходит живые слоты в порядке индексов.
// Порядок детерминирован для данного состояния карты — тесты и
// реплеи воспроизводимы.
func (m *GameMap) ForEach(fn func(id types.EntityID, e *Entity)) {
	for i := range m.slots {
		s := &m.slots[i]
		if s.live {
			fn(s.ent.ID, &s.ent)
		}
	}
}

// BlockingEntityAt возвращает первую (в порядке арены) сущность,
// блокирующую движение в клетке, или nil.
func (m *GameMap) BlockingEntityAt(x, y int) *Entity {
	for i := range m.slots {
		s := &m.slots[i]
		if s.live && s.ent.BlocksMovement && s.ent.Pos.X == x && s.ent.Pos.Y == y {
			return &s.ent
		}
	}
	return nil
}

// ActorAt возвращает живого актора в клетке, или nil.
// Трупы и декорации не учитываются.
func (m *GameMap) ActorAt(x, y int) *Entity {
	for i := range m.slots {
		s := &m.slots[i]
		if s.live && s.ent.IsAlive() && s.ent.Pos.X == x && s.ent.Pos.Y == y {
			return &s.ent
		}
	}
	return nil
}

// LivingActors возвращает ID живых акторов в порядке арены.
func (m *GameMap) LivingActors() []types.EntityID {
	var ids []types.EntityID
	for i := range m.slots {
		s := &m.slots[i]
		if s.live && s.ent.IsAlive() {
			ids = append(ids, s.ent.ID)
		}
	}
	return ids
}
