package domain

import (
	"strings"

	"github.com/Mizzalini/roguelike/internal/core/types"
)

// ActionType — внутренний числовой идентификатор намерения.
// Набор закрыт: движок обязан обработать каждый вариант, диспетчеризация
// идет через единственный исчерпывающий switch.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionWait
	ActionEscape
	ActionMove
	ActionMelee
	ActionBump
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"WAIT":   ActionWait,
	"ESCAPE": ActionEscape,
	"MOVE":   ActionMove,
	"MELEE":  ActionMelee,
	"BUMP":   ActionBump,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionWait:   "WAIT",
	ActionEscape: "ESCAPE",
	ActionMove:   "MOVE",
	ActionMelee:  "MELEE",
	ActionBump:   "BUMP",
}

// ParseAction конвертирует строку из JSON в ActionType.
func ParseAction(s string) ActionType {
	// Нечувствительно к регистру для надежности
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf и логов).
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// HasDirection возвращает true для вариантов, несущих смещение (dx, dy).
func (a ActionType) HasDirection() bool {
	switch a {
	case ActionMove, ActionMelee, ActionBump:
		return true
	default:
		return false
	}
}

// Action — намерение, привязанное к действующей сущности при создании.
// Dx/Dy заполняются только для направленных вариантов.
type Action struct {
	Type  ActionType
	Actor types.EntityID
	Dx    int
	Dy    int
}
