package systems

import (
	"testing"

	"github.com/Mizzalini/roguelike/internal/domain"
)

func TestHostileTurnAttacksWhenAdjacent(t *testing.T) {
	// Every one of the 8 adjacent offsets must resolve into an attack
	offsets := [][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}

	for _, off := range offsets {
		m := floorMap(10, 10)
		player := spawnActor(m, "Герой", 5, 5, 30, 0, 5)
		orc := spawnMonster(m, "Орк", 5+off[0], 5+off[1], 10, 0, 3)

		// The monster stands inside the player's field of view
		ComputeFOV(m, player.Pos, VisionRadius)
		cost := BuildCostField(m)

		events := HostileTurn(m, orc, player.ID, cost)

		if player.Fighter.HP != 27 {
			t.Errorf("Offset %v: expected player HP 27, got %d", off, player.Fighter.HP)
		}
		if len(events) == 0 {
			t.Errorf("Offset %v: expected combat events", off)
		}
		if orc.Pos.X != 5+off[0] || orc.Pos.Y != 5+off[1] {
			t.Errorf("Offset %v: attacking monster must not move", off)
		}
	}
}

func TestHostileTurnChasesWhenVisible(t *testing.T) {
	m := floorMap(20, 20)
	player := spawnActor(m, "Герой", 5, 5, 30, 2, 5)
	orc := spawnMonster(m, "Орк", 9, 5, 10, 0, 3)

	ComputeFOV(m, player.Pos, VisionRadius)
	cost := BuildCostField(m)

	before := orc.Pos.Chebyshev(player.Pos)
	HostileTurn(m, orc, player.ID, cost)
	after := orc.Pos.Chebyshev(player.Pos)

	if after >= before {
		t.Errorf("Monster should close in: distance %d -> %d", before, after)
	}
	if len(orc.AI.Path) == 0 {
		t.Error("Chasing monster should keep the remaining route")
	}
}

func TestHostileTurnFollowsStoredPathWhenUnseen(t *testing.T) {
	m := floorMap(30, 30)
	player := spawnActor(m, "Герой", 5, 5, 30, 2, 5)
	orc := spawnMonster(m, "Орк", 25, 25, 10, 0, 3)

	// Way out of sight; the monster still remembers a route
	ComputeFOV(m, player.Pos, VisionRadius)
	orc.AI.Path = []domain.Position{{X: 24, Y: 24}, {X: 23, Y: 23}}
	cost := BuildCostField(m)

	HostileTurn(m, orc, player.ID, cost)

	if orc.Pos.X != 24 || orc.Pos.Y != 24 {
		t.Errorf("Expected the monster at (24,24), got (%d,%d)", orc.Pos.X, orc.Pos.Y)
	}
	if len(orc.AI.Path) != 1 {
		t.Errorf("One path cell should be consumed, %d left", len(orc.AI.Path))
	}
}

func TestHostileTurnIdleWhenUnseenAndNoPath(t *testing.T) {
	m := floorMap(30, 30)
	player := spawnActor(m, "Герой", 5, 5, 30, 2, 5)
	orc := spawnMonster(m, "Орк", 25, 25, 10, 0, 3)

	ComputeFOV(m, player.Pos, VisionRadius)
	cost := BuildCostField(m)

	events := HostileTurn(m, orc, player.ID, cost)

	if events != nil {
		t.Error("Idle turn should produce no events")
	}
	if orc.Pos.X != 25 || orc.Pos.Y != 25 {
		t.Error("Idle monster must stay put")
	}
}

func TestHostileTurnStopsWhenPlayerDead(t *testing.T) {
	m := floorMap(10, 10)
	player := spawnActor(m, "Герой", 5, 5, 5, 0, 5)
	orc := spawnMonster(m, "Орк", 6, 5, 10, 0, 3)

	player.Fighter.State = domain.LifeDead
	ComputeFOV(m, player.Pos, VisionRadius)
	cost := BuildCostField(m)

	events := HostileTurn(m, orc, player.ID, cost)
	if events != nil {
		t.Error("Dead player must not be attacked")
	}
}
