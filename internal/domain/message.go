package domain

// Виды событий для лога клиента.
const (
	EventInfo   = "INFO"
	EventCombat = "COMBAT"
	EventDeath  = "DEATH"
	EventSystem = "SYSTEM"
)

// Цвета сообщений. Ядро не форматирует и не переносит текст,
// только помечает его цветом — верстка целиком на стороне клиента.
const (
	ColorWelcome   = "#20A0FF"
	ColorPlayerAtk = "#E0E0E0"
	ColorEnemyAtk  = "#FFC0C0"
	ColorPlayerDie = "#FF3030"
	ColorEnemyDie  = "#FFA030"
	ColorInfo      = "#FFFFFF"
)

// GameEvent — одно упорядоченное текстовое событие для коллаборатора-лога
// (результаты боя, смерти). Текст уходит клиенту как есть.
type GameEvent struct {
	Text  string `json:"text"`
	Color string `json:"color"`
	Kind  string `json:"kind"`
}

// Info создает информационное событие стандартного цвета.
func Info(text string) GameEvent {
	return GameEvent{Text: text, Color: ColorInfo, Kind: EventInfo}
}
