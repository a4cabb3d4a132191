package types

import "fmt"

// Glyph — упакованное представление цветного символа.
// 32 бита:
//
//	[0:8]  - ASCII символ
//	[8:32] - RGB-цвет (0xRRGGBB)
//
// Glyph является value-type: дешево копируется и сравнивается,
// пара Glyph-ов (светлый/темный) целиком описывает вид тайла.
type Glyph uint32

const (
	bitsChar = 8

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = 0xFFFFFF
)

// MakeGlyph собирает Glyph из RGB-цвета (0xRRGGBB) и символа.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | uint32(char)&maskChar)
}

// Char возвращает символ отображения.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Color возвращает 24-битный RGB-цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// HexColor возвращает цвет в виде строки "#RRGGBB" для отправки клиенту.
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// String реализует fmt.Stringer (для логов и отладки).
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char=%q, color=%s}", charStr, g.HexColor())
}
