package engine

import (
	"os"
	"testing"

	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/internal/systems"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// newTestEngine builds a session on a hand-made all-floor map,
// bypassing the generator for full control over the layout.
func newTestEngine(w, h int) *Engine {
	m := domain.NewGameMap(w, h)
	floor := domain.NewFloorTile()
	for i := range m.Tiles {
		m.Tiles[i] = floor
	}

	playerID := m.Spawn(domain.Entity{
		Name:           "Герой",
		BlocksMovement: true,
		Order:          domain.RenderOrderActor,
		Fighter:        domain.NewFighter(30, 2, 5),
	}, domain.Position{X: w / 2, Y: h / 2})

	g := &Engine{
		Map:      m,
		PlayerID: playerID,
		Status:   StatusRunning,
		Replay:   &domain.ReplaySession{Seed: 1},
	}
	// Same as NewEngine: the session opens with a valid field of view
	systems.ComputeFOV(m, m.Get(playerID).Pos, systems.VisionRadius)
	return g
}

func addMonster(g *Engine, name string, x, y, hp, def, pow int) *domain.Entity {
	id := g.Map.Spawn(domain.Entity{
		Name:           name,
		BlocksMovement: true,
		Order:          domain.RenderOrderActor,
		Fighter:        domain.NewFighter(hp, def, pow),
		AI:             &domain.AIComponent{Kind: domain.AIHostile},
	}, domain.Position{X: x, Y: y})
	return g.Map.Get(id)
}

func player(g *Engine) *domain.Entity {
	return g.Map.Get(g.PlayerID)
}
