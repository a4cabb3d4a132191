package agent

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/internal/engine"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

// Bot — "игрок-компьютер" (Headless Agent). Он гоняет движок напрямую,
// без сокетов: каждый ход выбирает случайное допустимое намерение и
// скармливает его секвенсору. Используется для прогонов на живучесть:
// тысячи ходов подряд не должны ронять ни один инвариант мира.
type Bot struct {
	Game     *engine.Engine
	MaxTurns int

	rng *rand.Rand
}

// NewBot создает агента поверх готовой сессии. Сид отделен от сида мира:
// один и тот же мир можно обойти разными маршрутами.
func NewBot(g *engine.Engine, seed int64, maxTurns int) *Bot {
	return &Bot{
		Game:     g,
		MaxTurns: maxTurns,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run играет сессию до терминального статуса или лимита ходов.
func (b *Bot) Run() engine.Status {
	for i := 0; i < b.MaxTurns; i++ {
		if b.Game.Status.Terminal() {
			break
		}
		b.Game.HandleAction(b.chooseIntent())
		b.Game.DrainEvents() // события никому не нужны, чистим буфер
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "agent",
		"turns":     b.Game.Turn,
		"status":    b.Game.Status.String(),
	}).Info("Bot run finished.")

	return b.Game.Status
}

// chooseIntent собирает направления, в которых толчок имеет смысл:
// проходимый пол или живой актор под ударом. Если идти некуда — ждем.
func (b *Bot) chooseIntent() domain.Action {
	player := b.Game.Map.Get(b.Game.PlayerID)
	if player == nil {
		return b.Game.PlayerIntent(domain.ActionWait, 0, 0)
	}

	type dir struct{ dx, dy int }
	var options []dir
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dest := player.Pos.Shift(dx, dy)
			if b.Game.Map.Walkable(dest.X, dest.Y) || b.Game.Map.ActorAt(dest.X, dest.Y) != nil {
				options = append(options, dir{dx, dy})
			}
		}
	}

	if len(options) == 0 {
		return b.Game.PlayerIntent(domain.ActionWait, 0, 0)
	}

	pick := options[b.rng.Intn(len(options))]
	return b.Game.PlayerIntent(domain.ActionBump, pick.dx, pick.dy)
}
