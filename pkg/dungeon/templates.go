package dungeon

import (
	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
)

// ActorTemplate — заготовка актора. Генератор клонирует шаблон в арену
// карты через GameMap.Spawn; сам шаблон никогда не мутирует.
type ActorTemplate struct {
	Name    string
	Glyph   types.Glyph
	HP      int
	Defense int
	Power   int
	Hostile bool // true — получает AI-компонент преследователя
}

// Шаблоны акторов.
var (
	PlayerTemplate = ActorTemplate{
		Name:    "Герой",
		Glyph:   types.MakeGlyph(0xFFFFFF, '@'),
		HP:      30,
		Defense: 2,
		Power:   5,
	}

	OrcTemplate = ActorTemplate{
		Name:    "Орк",
		Glyph:   types.MakeGlyph(0x3F7F3F, 'o'),
		HP:      10,
		Defense: 0,
		Power:   3,
		Hostile: true,
	}

	TrollTemplate = ActorTemplate{
		Name:    "Тролль",
		Glyph:   types.MakeGlyph(0x007F00, 'T'),
		HP:      16,
		Defense: 1,
		Power:   4,
		Hostile: true,
	}
)

// Build собирает сущность из шаблона. Позицию назначит Spawn.
func (t ActorTemplate) Build() domain.Entity {
	e := domain.Entity{
		Name:           t.Name,
		Glyph:          t.Glyph,
		BlocksMovement: true,
		Order:          domain.RenderOrderActor,
		Fighter:        domain.NewFighter(t.HP, t.Defense, t.Power),
	}
	if t.Hostile {
		e.AI = &domain.AIComponent{Kind: domain.AIHostile}
	}
	return e
}
