package agent

import (
	"os"
	"testing"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/internal/engine"
	"github.com/Mizzalini/roguelike/pkg/dungeon"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// TestBotSoak lets a random agent hammer a session for hundreds of turns
// and then checks that no world invariant was broken along the way.
func TestBotSoak(t *testing.T) {
	p := dungeon.DefaultParams()
	p.Seed = 31337

	g := engine.NewEngine(p)
	bot := NewBot(g, 7, 500)

	status := bot.Run()

	if g.Turn > 500 {
		t.Errorf("Bot exceeded the turn limit: %d", g.Turn)
	}

	switch status {
	case engine.StatusRunning:
		// Hit the turn limit while still alive, fine
	case engine.StatusGameOver:
		if g.Map.Get(g.PlayerID).IsAlive() {
			t.Error("GAME_OVER with a living player")
		}
	default:
		t.Errorf("Unexpected terminal status %s for a bot run", status)
	}

	// World invariants after the soak
	occupied := map[domain.Position]string{}
	g.Map.ForEach(func(_ types.EntityID, e *domain.Entity) {
		if !g.Map.InBounds(e.Pos.X, e.Pos.Y) {
			t.Errorf("%s ended out of bounds at (%d,%d)", e.Name, e.Pos.X, e.Pos.Y)
		}
		if !g.Map.Walkable(e.Pos.X, e.Pos.Y) {
			t.Errorf("%s ended inside a wall at (%d,%d)", e.Name, e.Pos.X, e.Pos.Y)
		}
		if e.BlocksMovement {
			if other, ok := occupied[e.Pos]; ok {
				t.Errorf("%s and %s share cell (%d,%d)", e.Name, other, e.Pos.X, e.Pos.Y)
			}
			occupied[e.Pos] = e.Name
		}
		if e.Fighter != nil && e.Fighter.State == domain.LifeDead {
			if e.Fighter.HP != 0 {
				t.Errorf("Dead %s has HP %d", e.Name, e.Fighter.HP)
			}
			if e.AI != nil {
				t.Errorf("Dead %s still carries an AI", e.Name)
			}
		}
	})

	if len(g.Replay.Actions) == 0 {
		t.Error("Bot run should leave a recorded action trail")
	}
}

func TestBotIsDeterministic(t *testing.T) {
	run := func() (int, engine.Status) {
		p := dungeon.DefaultParams()
		p.Seed = 555
		g := engine.NewEngine(p)
		st := NewBot(g, 9, 200).Run()
		return g.Turn, st
	}

	t1, s1 := run()
	t2, s2 := run()

	if t1 != t2 || s1 != s2 {
		t.Errorf("Bot runs diverged: (%d,%s) vs (%d,%s)", t1, s1, t2, s2)
	}
}
