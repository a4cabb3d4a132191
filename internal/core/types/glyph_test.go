package types

import "testing"

func TestGlyphPacking(t *testing.T) {
	g := MakeGlyph(0xC8B432, '.')

	if g.Char() != '.' {
		t.Errorf("Expected char '.', got %q", g.Char())
	}
	if g.Color() != 0xC8B432 {
		t.Errorf("Expected color 0xC8B432, got 0x%06X", g.Color())
	}
}

func TestGlyphHexColor(t *testing.T) {
	g := MakeGlyph(0x00FF30, '@')

	// Leading zeroes must survive formatting
	if g.HexColor() != "#00FF30" {
		t.Errorf("Expected #00FF30, got %s", g.HexColor())
	}
}

func TestGlyphColorMasking(t *testing.T) {
	// High byte above RGB must not leak into the packed value
	g := MakeGlyph(0xFF123456, 'x')

	if g.Color() != 0x123456 {
		t.Errorf("Expected masked color 0x123456, got 0x%06X", g.Color())
	}
	if g.Char() != 'x' {
		t.Errorf("Expected char 'x', got %q", g.Char())
	}
}
