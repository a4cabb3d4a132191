package domain

import "testing"

func TestFighterDamageClamp(t *testing.T) {
	f := NewFighter(10, 0, 3)

	if f.TakeDamage(4) {
		t.Error("Non-lethal damage should not report death")
	}
	if f.HP != 6 {
		t.Errorf("Expected HP 6, got %d", f.HP)
	}

	// Overkill clamps to zero and reports death exactly once
	if !f.TakeDamage(100) {
		t.Error("Lethal damage should report death")
	}
	if f.HP != 0 {
		t.Errorf("Expected HP clamped to 0, got %d", f.HP)
	}
}

func TestFighterDeadIsInert(t *testing.T) {
	f := NewFighter(5, 0, 1)
	f.TakeDamage(5)
	f.State = LifeDead

	if f.TakeDamage(3) {
		t.Error("Damage on a dead fighter should never report death again")
	}
	f.Heal(10)
	if f.HP != 0 {
		t.Errorf("Dead fighter should not heal, got HP %d", f.HP)
	}
}

func TestFighterHealClamp(t *testing.T) {
	f := NewFighter(10, 1, 2)
	f.TakeDamage(3)
	f.Heal(100)

	if f.HP != f.MaxHP {
		t.Errorf("Expected heal clamp to MaxHP %d, got %d", f.MaxHP, f.HP)
	}
}
