package server

import (
	"sync"

	"github.com/Mizzalini/roguelike/internal/engine"
)

// SessionInfo — сводка по живой сессии для debug-эндпоинтов.
type SessionInfo struct {
	ID     string `json:"id"`
	Seed   int64  `json:"seed"`
	Turn   int    `json:"turn"`
	Status string `json:"status"`
}

// Registry хранит активные сессии. Каждое подключение получает свой
// изолированный движок, поэтому рассылка не нужна: реестр существует
// ради наблюдаемости и корректного завершения.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*engine.Engine
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*engine.Engine),
	}
}

// Register привязывает движок к идентификатору сессии.
func (r *Registry) Register(id string, g *engine.Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = g
}

// Unregister убирает сессию из реестра.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get возвращает движок сессии или nil.
func (r *Registry) Get(id string) *engine.Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// List снимает сводку по всем активным сессиям.
func (r *Registry) List() []SessionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SessionInfo, 0, len(r.sessions))
	for id, g := range r.sessions {
		out = append(out, SessionInfo{
			ID:     id,
			Seed:   g.Replay.Seed,
			Turn:   g.Turn,
			Status: g.Status.String(),
		})
	}
	return out
}

// Count возвращает число активных сессий.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
