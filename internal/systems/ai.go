package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

// HostileTurn выполняет один ход враждебного преследователя.
//
// Состояния: Idle (пустой Path) и Pursuing (в Path лежит маршрут).
//
//  1. Если клетка монстра в текущем поле зрения игрока: на дистанции
//     Чебышёва <= 1 — удар (запомненный маршрут не трогаем), иначе —
//     полный пересчет маршрута к игроку со сбросом старого и один шаг.
//  2. Вне поля зрения: дотрачиваем запомненный маршрут по шагу за ход;
//     если маршрута нет — ждем.
//
// Восприятие монстра аппроксимировано полем зрения САМОГО ИГРОКА:
// "монстр видит игрока" == "клетка монстра видна игроку". Это симметричная
// аппроксимация; менять без явного решения нельзя — на ней держится
// текущее поведение преследования.
func HostileTurn(m *domain.GameMap, npc *domain.Entity, playerID types.EntityID, cost []int) []domain.GameEvent {
	player := m.Get(playerID)
	if player == nil || !player.IsAlive() || npc.AI == nil {
		return nil
	}

	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    npc.ID,
		"npc_name":  npc.Name,
	})

	if m.Visible[m.Index(npc.Pos.X, npc.Pos.Y)] {
		if npc.Pos.Chebyshev(player.Pos) <= 1 {
			aiLogger.Debug("Target adjacent, attacking.")
			return ApplyMelee(m, npc, player.Pos.X-npc.Pos.X, player.Pos.Y-npc.Pos.Y, playerID)
		}

		// Старый маршрут отбрасывается целиком
		npc.AI.Path = FindPath(m, cost, npc.Pos, player.Pos)
		aiLogger.WithField("path_len", len(npc.AI.Path)).Debug("Path to target recomputed.")
	}

	if len(npc.AI.Path) > 0 {
		next := npc.AI.Path[0]
		npc.AI.Path = npc.AI.Path[1:]
		ApplyMove(m, npc, next.X-npc.Pos.X, next.Y-npc.Pos.Y)
		return nil
	}

	// Idle: стоим и ждем
	return nil
}
