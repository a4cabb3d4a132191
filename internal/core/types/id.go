package types

import (
	"fmt"
	"strconv"
)

// EntityID — 64-битный генерационный идентификатор сущности в арене карты.
//
// Формат битов (от старших к младшим):
//
//	[ Generation (32) | Index (32) ]
//
// Где:
//   - Index — индекс слота в плотном массиве сущностей карты
//   - Generation — версия слота (защита от устаревших ссылок:
//     после освобождения слота старый ID перестает резолвиться)
//
// Принадлежность сущности карте определяется присутствием живого слота
// в арене этой карты, а не обратным указателем.
type EntityID uint64

// NilEntityID — нулевой идентификатор, аналог nil.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32

	shiftGen = bitsIndex

	maskIndex = (1 << bitsIndex) - 1
)

// PackEntityID собирает EntityID из поколения и индекса слота.
// Поколение 0 зарезервировано: валидные ID начинаются с поколения 1,
// поэтому нулевое значение EntityID никогда не адресует живой слот.
func PackEntityID(gen uint32, index uint32) EntityID {
	return EntityID(uint64(gen)<<shiftGen | uint64(index))
}

// Index возвращает индекс слота в арене.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
func (id EntityID) Generation() uint32 {
	return uint32(id >> shiftGen)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String возвращает человекочитаемое представление (для логов).
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[gen=%d idx=%d]", id.Generation(), id.Index())
}

// MarshalJSON сериализует EntityID как строку, чтобы не терять точность
// uint64 на стороне JavaScript.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON десериализует EntityID из строкового представления.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid EntityID %q: %w", s, err)
	}
	*id = EntityID(v)
	return nil
}
