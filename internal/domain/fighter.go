package domain

// Lifecycle — явное состояние жизненного цикла актора.
// Переход Alive -> Dead происходит ровно один раз и необратим;
// все системы сверяются с этим полем, а не с HP напрямую.
type Lifecycle uint8

const (
	LifeAlive Lifecycle = iota
	LifeDead
)

// Fighter — боевой компонент (игрок, монстр).
type Fighter struct {
	MaxHP   int       `json:"maxHp"`
	HP      int       `json:"hp"`
	Defense int       `json:"defense"`
	Power   int       `json:"power"`
	State   Lifecycle `json:"state"`
}

// NewFighter создает живой боевой компонент с полным здоровьем.
func NewFighter(hp, defense, power int) *Fighter {
	return &Fighter{
		MaxHP:   hp,
		HP:      hp,
		Defense: defense,
		Power:   power,
		State:   LifeAlive,
	}
}

// SetHP выставляет здоровье с зажимом в диапазон [0, MaxHP].
// Возвращает true, если здоровье упало до нуля и актор должен умереть.
// На мертвом акторе изменения состояния не происходят.
func (f *Fighter) SetHP(value int) bool {
	if f.State == LifeDead {
		return false
	}

	if value < 0 {
		value = 0
	}
	if value > f.MaxHP {
		value = f.MaxHP
	}
	f.HP = value

	return f.HP == 0
}

// TakeDamage наносит урон. Возвращает true, если актор погиб от этого удара.
func (f *Fighter) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	return f.SetHP(f.HP - amount)
}

// Heal лечит актора. Трупы не лечим.
func (f *Fighter) Heal(amount int) {
	if f.State == LifeDead || amount < 0 {
		return
	}
	f.SetHP(f.HP + amount)
}
