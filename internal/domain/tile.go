package domain

import "github.com/Mizzalini/roguelike/internal/core/types"

// Tile — одна клетка карты. Неизменяема после генерации уровня:
// генератор расставляет тайлы, дальше мир меняет только сущности.
type Tile struct {
	// Walkable — можно ли стоять на клетке.
	Walkable bool
	// Transparent — пропускает ли клетка взгляд (для FOV).
	Transparent bool

	// Dark/Light — вид клетки вне поля зрения (туман войны) и в нем.
	Dark  types.Glyph
	Light types.Glyph
}

// Shroud — вид клетки, которую игрок еще ни разу не видел.
var Shroud = types.MakeGlyph(0x000000, ' ')

// NewWallTile возвращает непроходимую непрозрачную стену.
func NewWallTile() Tile {
	return Tile{
		Walkable:    false,
		Transparent: false,
		Dark:        types.MakeGlyph(0x000064, '#'),
		Light:       types.MakeGlyph(0x826E32, '#'),
	}
}

// NewFloorTile возвращает проходимый прозрачный пол.
func NewFloorTile() Tile {
	return Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        types.MakeGlyph(0x323296, '.'),
		Light:       types.MakeGlyph(0xC8B432, '.'),
	}
}
