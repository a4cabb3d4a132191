package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/internal/systems"
	"github.com/Mizzalini/roguelike/pkg/dungeon"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

// Engine — ядро одной игровой сессии: карта, игрок и секвенсор ходов.
//
// Один полный ход: принятое намерение игрока -> выполнение -> (если не
// Escape) ход каждого живого врага ровно один раз -> пересчет FOV ->
// управление возвращается презентационному слою за следующим намерением.
//
// Доступ строго однопоточный. Единственная точка ожидания — внешний ввод,
// и она целиком вне ядра.
type Engine struct {
	Map      *domain.GameMap
	PlayerID types.EntityID
	Status   Status
	Turn     int

	// Rooms — принятые комнаты генерации (для отладки и тестов)
	Rooms []dungeon.RectangularRoom

	// Replay — лента принятых намерений этой сессии
	Replay *domain.ReplaySession

	events []domain.GameEvent
}

// NewEngine генерирует уровень по параметрам и готовит сессию:
// первый снапшот уже содержит корректное поле зрения.
func NewEngine(p dungeon.Params) *Engine {
	m, playerID, rooms := dungeon.Generate(p)

	g := &Engine{
		Map:      m,
		PlayerID: playerID,
		Status:   StatusRunning,
		Rooms:    rooms,
		Replay: &domain.ReplaySession{
			Seed:               p.Seed,
			Timestamp:          time.Now().Unix(),
			MapWidth:           p.MapWidth,
			MapHeight:          p.MapHeight,
			MaxRooms:           p.MaxRooms,
			RoomMinSize:        p.RoomMinSize,
			RoomMaxSize:        p.RoomMaxSize,
			MaxMonstersPerRoom: p.MaxMonstersPerRoom,
		},
	}

	if player := m.Get(playerID); player != nil {
		systems.ComputeFOV(m, player.Pos, systems.VisionRadius)
	}

	g.pushEvent(domain.GameEvent{
		Text:  "Добро пожаловать в подземелье.",
		Color: domain.ColorWelcome,
		Kind:  domain.EventInfo,
	})

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      p.Seed,
		"player_id": playerID,
	}).Info("Session started.")

	return g
}

// HandleAction принимает одно провалидированное намерение игрока и
// прокручивает полный ход. Возвращает статус сессии после хода.
func (g *Engine) HandleAction(a domain.Action) Status {
	if g.Status.Terminal() {
		return g.Status
	}

	g.Replay.Actions = append(g.Replay.Actions, domain.ReplayAction{
		Turn:   g.Turn,
		Action: a.Type,
		Dx:     a.Dx,
		Dy:     a.Dy,
	})

	g.perform(a)

	// Escape обрывает обработку хода: ходы врагов и FOV не выполняются
	if g.Status.Terminal() {
		return g.Status
	}

	g.runEnemyTurns()

	if player := g.Map.Get(g.PlayerID); player != nil {
		systems.ComputeFOV(g.Map, player.Pos, systems.VisionRadius)

		if !player.IsAlive() {
			g.Status = StatusGameOver
		}
	}

	g.Turn++
	return g.Status
}

// runEnemyTurns дает сходить каждому живому актору с AI, кроме игрока,
// ровно один раз, в порядке арены (детерминированном для данного сида).
// Поле цен снимается один раз до первого хода: все враги этого хода
// видят согласованную картину занятости.
func (g *Engine) runEnemyTurns() {
	cost := systems.BuildCostField(g.Map)

	for _, id := range g.Map.LivingActors() {
		if id == g.PlayerID {
			continue
		}
		npc := g.Map.Get(id)
		if npc == nil || npc.AI == nil {
			continue
		}
		g.pushEvents(systems.HostileTurn(g.Map, npc, g.PlayerID, cost))
	}
}

// PlayerIntent собирает намерение, привязанное к игроку.
func (g *Engine) PlayerIntent(t domain.ActionType, dx, dy int) domain.Action {
	return domain.Action{Type: t, Actor: g.PlayerID, Dx: dx, Dy: dy}
}

// DrainEvents отдает накопленные события и очищает буфер.
func (g *Engine) DrainEvents() []domain.GameEvent {
	out := g.events
	g.events = nil
	return out
}

func (g *Engine) pushEvent(e domain.GameEvent) {
	g.events = append(g.events, e)
}

func (g *Engine) pushEvents(es []domain.GameEvent) {
	g.events = append(g.events, es...)
}
