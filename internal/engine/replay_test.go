package engine

import (
	"testing"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/pkg/dungeon"
)

// TestResimulateMatchesLive replays a recorded session from scratch and
// expects the rebuilt world to be indistinguishable from the live one.
func TestResimulateMatchesLive(t *testing.T) {
	p := dungeon.DefaultParams()
	p.Seed = 2024

	live := NewEngine(p)

	// A fixed walk script; some steps will hit walls or monsters,
	// which is exactly the point
	script := []struct{ dx, dy int }{
		{1, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 1}, {-1, 0},
		{0, -1}, {1, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 1},
	}
	for _, s := range script {
		live.HandleAction(live.PlayerIntent(domain.ActionBump, s.dx, s.dy))
		live.HandleAction(live.PlayerIntent(domain.ActionWait, 0, 0))
	}

	replayed := Resimulate(live.Replay)

	if replayed.Turn != live.Turn {
		t.Errorf("Turn mismatch: live %d, replayed %d", live.Turn, replayed.Turn)
	}
	if replayed.Status != live.Status {
		t.Errorf("Status mismatch: live %s, replayed %s", live.Status, replayed.Status)
	}

	type snap struct {
		Name  string
		Pos   domain.Position
		HP    int
		State domain.Lifecycle
	}
	collect := func(g *Engine) []snap {
		var out []snap
		g.Map.ForEach(func(_ types.EntityID, e *domain.Entity) {
			s := snap{Name: e.Name, Pos: e.Pos}
			if e.Fighter != nil {
				s.HP = e.Fighter.HP
				s.State = e.Fighter.State
			}
			out = append(out, s)
		})
		return out
	}

	a, b := collect(live), collect(replayed)
	if len(a) != len(b) {
		t.Fatalf("Entity counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Entity %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}

	for i := range live.Map.Explored {
		if live.Map.Explored[i] != replayed.Map.Explored[i] {
			t.Fatal("Explored sets differ between live and replayed sessions")
		}
	}
}
