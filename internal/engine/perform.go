package engine

import (
	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/internal/systems"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

// perform выполняет одно намерение. Switch исчерпывающий по закрытому
// набору ActionType: каждый вариант обязан иметь ветку, "не реализовано"
// в рантайме невозможно.
func (g *Engine) perform(a domain.Action) {
	// Escape не требует живого актора: выйти можно и после смерти
	if a.Type == domain.ActionEscape {
		g.Status = StatusQuit
		logger.Log.WithField("component", "engine").Info("Escape: session terminated.")
		return
	}

	actor := g.Map.Get(a.Actor)
	if actor == nil || !actor.IsAlive() {
		return
	}

	switch a.Type {
	case domain.ActionWait:
		// Намеренно ничего: пропуск хода

	case domain.ActionMove:
		// Невозможный шаг — тихий no-op, не ошибка
		systems.ApplyMove(g.Map, actor, a.Dx, a.Dy)

	case domain.ActionMelee:
		g.pushEvents(systems.ApplyMelee(g.Map, actor, a.Dx, a.Dy, g.PlayerID))

	case domain.ActionBump:
		// Занятость проверяется в момент выполнения, а не создания:
		// между созданием намерения и выполнением она могла измениться
		dest := actor.Pos.Shift(a.Dx, a.Dy)
		if g.Map.ActorAt(dest.X, dest.Y) != nil {
			g.perform(domain.Action{Type: domain.ActionMelee, Actor: a.Actor, Dx: a.Dx, Dy: a.Dy})
		} else {
			g.perform(domain.Action{Type: domain.ActionMove, Actor: a.Actor, Dx: a.Dx, Dy: a.Dy})
		}

	case domain.ActionUnknown, domain.ActionEscape:
		// Escape обработан выше; Unknown отбрасывается валидатором,
		// сюда он попасть не должен
		logger.Log.WithField("action", a.Type.String()).Warn("Unhandled action reached perform.")
	}
}
