package server

import (
	"os"
	"testing"

	"github.com/Mizzalini/roguelike/internal/engine"
	"github.com/Mizzalini/roguelike/pkg/dungeon"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	p := dungeon.DefaultParams()
	p.Seed = 11
	g := engine.NewEngine(p)

	r.Register("s1", g)
	if r.Count() != 1 {
		t.Fatalf("Expected 1 session, got %d", r.Count())
	}
	if r.Get("s1") != g {
		t.Error("Get should return the registered engine")
	}
	if r.Get("missing") != nil {
		t.Error("Unknown session must resolve to nil")
	}

	list := r.List()
	if len(list) != 1 {
		t.Fatalf("Expected 1 summary, got %d", len(list))
	}
	if list[0].ID != "s1" || list[0].Seed != 11 {
		t.Errorf("Unexpected summary: %+v", list[0])
	}
	if list[0].Status != "RUNNING" {
		t.Errorf("Fresh session should be RUNNING, got %s", list[0].Status)
	}

	r.Unregister("s1")
	if r.Count() != 0 {
		t.Error("Unregister should remove the session")
	}
	if r.Get("s1") != nil {
		t.Error("Removed session must not resolve")
	}
}
