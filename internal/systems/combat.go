package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

// ApplyMelee разрешает удар ближнего боя из клетки атакующего по смещению
// (dx, dy). Удар состоится только если в целевой клетке стоит живой актор;
// иначе — тихий no-op (занятость могла измениться между созданием
// намерения и выполнением).
//
// Урон = power атакующего - defense цели. Неположительный урон не наносится,
// но событие "без урона" все равно генерируется.
func ApplyMelee(m *domain.GameMap, attacker *domain.Entity, dx, dy int, playerID types.EntityID) []domain.GameEvent {
	dest := attacker.Pos.Shift(dx, dy)

	target := m.ActorAt(dest.X, dest.Y)
	if target == nil {
		return nil
	}

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	damage := attacker.Fighter.Power - target.Fighter.Defense

	attackColor := domain.ColorEnemyAtk
	if attacker.ID == playerID {
		attackColor = domain.ColorPlayerAtk
	}

	var events []domain.GameEvent

	if damage > 0 {
		hpBefore := target.Fighter.HP
		died := target.Fighter.TakeDamage(damage)

		combatLogger.WithFields(logrus.Fields{
			"damage":      damage,
			"hp_before":   hpBefore,
			"hp_after":    target.Fighter.HP,
			"target_died": died,
		}).Info("Attack resolved.")

		events = append(events, domain.GameEvent{
			Text:  fmt.Sprintf("%s бьет %s: %d урона.", attacker.Name, target.Name, damage),
			Color: attackColor,
			Kind:  domain.EventCombat,
		})

		if died {
			events = append(events, applyDeath(target, playerID))
		}
	} else {
		combatLogger.WithField("damage", damage).Info("Attack resolved without damage.")

		events = append(events, domain.GameEvent{
			Text:  fmt.Sprintf("%s бьет %s, но не пробивает защиту.", attacker.Name, target.Name),
			Color: attackColor,
			Kind:  domain.EventCombat,
		})
	}

	return events
}

// applyDeath выполняет переход Alive -> Dead. Сущность остается в арене:
// меняем ее на месте в труп, отцепляем AI, перестаем блокировать проход.
// Повторно сюда попасть нельзя — TakeDamage по мертвому возвращает false.
func applyDeath(target *domain.Entity, playerID types.EntityID) domain.GameEvent {
	target.Fighter.State = domain.LifeDead
	target.AI = nil
	target.BlocksMovement = false
	target.Glyph = types.MakeGlyph(0xBF0000, '%')
	target.Order = domain.RenderOrderCorpse

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"entity_id": target.ID,
		"name":      target.Name,
	}).Info("Actor died.")

	if target.ID == playerID {
		return domain.GameEvent{
			Text:  "Вы погибли!",
			Color: domain.ColorPlayerDie,
			Kind:  domain.EventDeath,
		}
	}

	event := domain.GameEvent{
		Text:  fmt.Sprintf("%s погибает.", target.Name),
		Color: domain.ColorEnemyDie,
		Kind:  domain.EventDeath,
	}
	target.Name = "останки " + target.Name
	return event
}
