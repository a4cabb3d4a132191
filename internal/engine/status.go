package engine

// Status — состояние сессии-автомата ходов. Завершение (выход по Escape,
// гибель игрока) — это явный терминальный переход, а не исключение:
// из терминального состояния возврата нет, новые намерения игнорируются.
type Status uint8

const (
	StatusRunning Status = iota
	StatusQuit
	StatusGameOver
)

var statusToString = map[Status]string{
	StatusRunning:  "RUNNING",
	StatusQuit:     "QUIT",
	StatusGameOver: "GAME_OVER",
}

func (s Status) String() string {
	if v, ok := statusToString[s]; ok {
		return v
	}
	return "UNKNOWN"
}

// Terminal возвращает true для завершенной сессии.
func (s Status) Terminal() bool {
	return s != StatusRunning
}
