package domain

// ReplayAction — запись одного принятого намерения игрока.
type ReplayAction struct {
	Turn   int        `json:"turn"`
	Action ActionType `json:"action"`
	Dx     int        `json:"dx"`
	Dy     int        `json:"dy"`
}

// ReplaySession — полная запись партии: сид, параметры генерации и лента
// намерений. Мир детерминирован сидом, поэтому этого достаточно, чтобы
// пересимулировать сессию байт-в-байт.
type ReplaySession struct {
	Seed      int64 `json:"seed"`
	Timestamp int64 `json:"timestamp"`

	// Параметры генерации уровня (дублируют dungeon.Params,
	// чтобы пакет domain не зависел от генератора)
	MapWidth           int `json:"mapWidth"`
	MapHeight          int `json:"mapHeight"`
	MaxRooms           int `json:"maxRooms"`
	RoomMinSize        int `json:"roomMinSize"`
	RoomMaxSize        int `json:"roomMaxSize"`
	MaxMonstersPerRoom int `json:"maxMonstersPerRoom"`

	Actions []ReplayAction `json:"actions"`
}
