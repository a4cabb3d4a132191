package systems

import (
	"os"
	"testing"

	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// floorMap builds an all-floor map of the given size.
func floorMap(w, h int) *domain.GameMap {
	m := domain.NewGameMap(w, h)
	floor := domain.NewFloorTile()
	for i := range m.Tiles {
		m.Tiles[i] = floor
	}
	return m
}

func spawnActor(m *domain.GameMap, name string, x, y int, hp, def, pow int) *domain.Entity {
	id := m.Spawn(domain.Entity{
		Name:           name,
		BlocksMovement: true,
		Order:          domain.RenderOrderActor,
		Fighter:        domain.NewFighter(hp, def, pow),
	}, domain.Position{X: x, Y: y})
	return m.Get(id)
}

func spawnMonster(m *domain.GameMap, name string, x, y int, hp, def, pow int) *domain.Entity {
	e := spawnActor(m, name, x, y, hp, def, pow)
	e.AI = &domain.AIComponent{Kind: domain.AIHostile}
	return e
}
