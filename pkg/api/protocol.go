package api

import "encoding/json"

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand — входящее сообщение. Клиент присылает уже
// дизамбигуированное намерение: смещение, ожидание или выход.
// Ядро никогда не разбирает сырой ввод устройств.
type ClientCommand struct {
	Action  string          `json:"action"` // INIT, MOVE, WAIT, ESCAPE
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DirectionPayload — смещение для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// InitPayload — необязательные параметры старта сессии.
// Нулевой сид означает "возьми серверный"; непустое имя дает
// детерминированный сид от имени (одно имя — один и тот же мир).
type InitPayload struct {
	Seed int64  `json:"seed,omitempty"`
	Name string `json:"name,omitempty"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse — полный "снимок" мира, видимого клиентом.
// Отправляется после каждого обработанного хода.
type ServerResponse struct {
	Type string `json:"type"` // INIT, UPDATE

	// Status сессии: RUNNING, QUIT, GAME_OVER.
	Status string `json:"status"`

	Turn int `json:"turn"`

	// Grid — размеры всей карты, чтобы клиент подготовил сетку.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map — тайлы, которые игрок видит или когда-либо видел.
	// Никогда не виденные клетки не отправляются вовсе.
	Map []TileView `json:"map,omitempty"`

	// Entities — сущности в текущем поле зрения,
	// отсортированные по ярусу отрисовки (трупы под живыми).
	Entities []EntityView `json:"entities,omitempty"`

	// Player — данные для полоски здоровья.
	Player *HealthView `json:"player,omitempty"`

	// Logs — новые события с прошлого хода, по порядку.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView — DTO одного тайла. Символ и цвет уже выбраны ядром:
// светлая пара в поле зрения, темная — для тумана войны.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	IsVisible  bool `json:"isVisible"`
	IsExplored bool `json:"isExplored"`
}

// EntityView — DTO видимой сущности.
type EntityView struct {
	ID     string `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Name   string `json:"name"`

	// Order — ярус отрисовки при совпадении клеток (больше = выше).
	Order uint8 `json:"order"`
}

// HealthView — данные полоски здоровья игрока.
type HealthView struct {
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
}

// LogEntry — запись в логе клиента. Текст уходит как есть:
// перенос и верстка — забота клиента.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Color     string `json:"color"`
	Kind      string `json:"kind"` // INFO, COMBAT, DEATH, SYSTEM
	Timestamp int64  `json:"timestamp"`
}
