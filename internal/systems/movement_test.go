package systems

import (
	"testing"

	"github.com/Mizzalini/roguelike/internal/domain"
)

func TestCalculateMoveIntoWall(t *testing.T) {
	m := floorMap(10, 10)
	m.SetTile(6, 5, domain.NewWallTile())
	e := spawnActor(m, "Герой", 5, 5, 30, 2, 5)

	res := CalculateMove(m, e, 1, 0)
	if !res.IsWall {
		t.Error("Expected IsWall for a wall destination")
	}
	if res.HasMoved {
		t.Error("Move into a wall must not succeed")
	}

	// CalculateMove never mutates
	if e.Pos.X != 5 || e.Pos.Y != 5 {
		t.Error("CalculateMove must not change the entity position")
	}
}

func TestCalculateMoveOutOfBounds(t *testing.T) {
	m := floorMap(10, 10)
	e := spawnActor(m, "Герой", 0, 0, 30, 2, 5)

	res := CalculateMove(m, e, -1, 0)
	if !res.IsWall {
		t.Error("Out of bounds must report IsWall")
	}
}

func TestCalculateMoveBlockedByEntity(t *testing.T) {
	m := floorMap(10, 10)
	e := spawnActor(m, "Герой", 5, 5, 30, 2, 5)
	other := spawnActor(m, "Орк", 6, 5, 10, 0, 3)

	res := CalculateMove(m, e, 1, 0)
	if res.BlockedBy == nil {
		t.Fatal("Expected BlockedBy for an occupied destination")
	}
	if res.BlockedBy.ID != other.ID {
		t.Error("BlockedBy should point at the occupying entity")
	}
	if res.HasMoved {
		t.Error("Blocked move must not succeed")
	}
}

func TestApplyMove(t *testing.T) {
	m := floorMap(10, 10)
	e := spawnActor(m, "Герой", 5, 5, 30, 2, 5)

	if !ApplyMove(m, e, 1, 1) {
		t.Fatal("Move onto free floor should succeed")
	}
	if e.Pos.X != 6 || e.Pos.Y != 6 {
		t.Errorf("Expected (6,6), got (%d,%d)", e.Pos.X, e.Pos.Y)
	}

	// Failed move is a silent no-op
	m.SetTile(7, 6, domain.NewWallTile())
	if ApplyMove(m, e, 1, 0) {
		t.Error("Move into a wall should fail")
	}
	if e.Pos.X != 6 || e.Pos.Y != 6 {
		t.Error("Failed move must not change the position")
	}
}
