package utils

import "testing"

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if len(a) != 16 {
		t.Errorf("Expected 16 hex chars, got %d (%q)", len(a), a)
	}
	if a == b {
		t.Error("Two generated IDs should not collide")
	}
}

func TestStringToSeedIsStable(t *testing.T) {
	if StringToSeed("hero") != StringToSeed("hero") {
		t.Error("Seed for the same string must be stable")
	}
	if StringToSeed("hero") == StringToSeed("Hero") {
		t.Error("Different strings should yield different seeds")
	}
}
