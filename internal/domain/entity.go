package domain

import "github.com/Mizzalini/roguelike/internal/core/types"

// RenderOrder — ярус отрисовки. При совпадении клеток сущность
// с большим значением рисуется поверх (живые поверх трупов).
type RenderOrder uint8

const (
	RenderOrderCorpse RenderOrder = iota
	RenderOrderItem
	RenderOrderActor
)

// AIKind — вид стратегии поведения.
type AIKind uint8

const (
	// AIHostile — враждебный преследователь (единственная стратегия пока).
	AIHostile AIKind = iota
)

// AIComponent — мозги сущности. Если указатель nil, сущность инертна.
//
// Path — запомненный маршрут преследования. Пустой путь = состояние Idle,
// непустой = Pursuing. Путь не содержит стартовой клетки и
// расходуется по одной клетке за ход.
type AIComponent struct {
	Kind AIKind     `json:"kind"`
	Path []Position `json:"path,omitempty"`
}

// Entity — базовая запись для всего, что стоит на карте.
// Поведение задается опциональными компонентами, а не иерархией типов:
// Fighter == nil — декорация, AI == nil — без собственных ходов.
type Entity struct {
	ID   types.EntityID `json:"id"`
	Name string         `json:"name"`

	Glyph          types.Glyph `json:"glyph"`
	BlocksMovement bool        `json:"blocksMovement"`
	Order          RenderOrder `json:"order"`

	Pos Position `json:"pos"`

	// Компоненты (nil — свойство отсутствует)
	Fighter *Fighter     `json:"fighter,omitempty"`
	AI      *AIComponent `json:"ai,omitempty"`
}

// IsActor возвращает true, если сущность участвует в бою.
func (e *Entity) IsActor() bool {
	return e.Fighter != nil
}

// IsAlive возвращает true для живого актора.
// Декорации и трупы не считаются живыми.
func (e *Entity) IsAlive() bool {
	return e.Fighter != nil && e.Fighter.State == LifeAlive
}
