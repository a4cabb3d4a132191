package systems

import (
	"testing"

	"github.com/Mizzalini/roguelike/internal/domain"
)

func TestFOVOriginAlwaysVisible(t *testing.T) {
	m := floorMap(20, 20)
	origin := domain.Position{X: 10, Y: 10}

	ComputeFOV(m, origin, VisionRadius)

	if !m.Visible[m.Index(10, 10)] {
		t.Error("Origin cell must always be visible")
	}
	if !m.Explored[m.Index(10, 10)] {
		t.Error("Visible cells must be marked explored")
	}
}

func TestFOVRadiusLimit(t *testing.T) {
	m := floorMap(30, 30)
	origin := domain.Position{X: 15, Y: 15}

	ComputeFOV(m, origin, VisionRadius)

	if !m.Visible[m.Index(19, 15)] {
		t.Error("Cell within the radius should be visible on open floor")
	}
	if m.Visible[m.Index(25, 15)] {
		t.Error("Cell far beyond the radius must not be visible")
	}
}

func TestFOVWallsOcclude(t *testing.T) {
	m := floorMap(30, 30)
	origin := domain.Position{X: 15, Y: 15}

	ComputeFOV(m, origin, VisionRadius)
	if !m.Visible[m.Index(19, 15)] {
		t.Fatal("Sanity: cell should be visible without the wall")
	}

	// A short wall segment between origin and the probe cell
	wall := domain.NewWallTile()
	for dy := -1; dy <= 1; dy++ {
		m.SetTile(17, 15+dy, wall)
	}

	ComputeFOV(m, origin, VisionRadius)
	if m.Visible[m.Index(19, 15)] {
		t.Error("Cell behind a wall must not be visible")
	}
	if !m.Visible[m.Index(17, 15)] {
		t.Error("The wall itself should be visible")
	}
}

func TestFOVExploredIsMonotonic(t *testing.T) {
	m := floorMap(30, 30)

	ComputeFOV(m, domain.Position{X: 15, Y: 15}, VisionRadius)

	explored := make([]bool, len(m.Explored))
	copy(explored, m.Explored)

	// Move far away; the old area leaves sight but stays explored
	ComputeFOV(m, domain.Position{X: 4, Y: 4}, VisionRadius)

	for i, was := range explored {
		if was && !m.Explored[i] {
			t.Fatalf("Cell %d lost its explored flag", i)
		}
	}
	if m.Visible[m.Index(15, 15)] {
		t.Error("Old origin should not stay visible after moving away")
	}
}
