package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/pkg/dungeon"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

// GenParams восстанавливает параметры генерации из записи сессии.
func GenParams(s *domain.ReplaySession) dungeon.Params {
	return dungeon.Params{
		MapWidth:           s.MapWidth,
		MapHeight:          s.MapHeight,
		MaxRooms:           s.MaxRooms,
		RoomMinSize:        s.RoomMinSize,
		RoomMaxSize:        s.RoomMaxSize,
		MaxMonstersPerRoom: s.MaxMonstersPerRoom,
		Seed:               s.Seed,
	}
}

// Resimulate пересоздает мир по сиду записи и прогоняет через секвенсор
// всю ленту намерений. Мир детерминирован, поэтому итоговое состояние
// байт-в-байт совпадает с живой сессией.
func Resimulate(s *domain.ReplaySession) *Engine {
	g := NewEngine(GenParams(s))

	for _, ra := range s.Actions {
		status := g.HandleAction(g.PlayerIntent(ra.Action, ra.Dx, ra.Dy))
		if status.Terminal() {
			break
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"seed":      s.Seed,
		"actions":   len(s.Actions),
		"status":    g.Status.String(),
		"turns":     g.Turn,
	}).Info("Replay simulation finished.")

	return g
}
