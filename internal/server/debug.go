package server

import (
	"encoding/json"
	"net/http"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
)

// DebugHandler предоставляет доступ к внутреннему состоянию сессий
type DebugHandler struct {
	Sessions *Registry
}

func NewDebugHandler(r *Registry) *DebugHandler {
	return &DebugHandler{Sessions: r}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
}

// /debug/sessions - список активных сессий и их статусы
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Sessions.List())
}

// /debug/entities?session=<id> - дамп всех сущностей сессии,
// включая скрытые статы и состояние AI.
// Внимание: движком владеет горутина соединения; дамп read-only
// и годится только для отладки, не для продовых метрик.
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")

	g := h.Sessions.Get(id)
	if g == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	var dump []domain.Entity
	g.Map.ForEach(func(_ types.EntityID, e *domain.Entity) {
		dump = append(dump, *e)
	})

	writeJSON(w, dump)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (пустая сессия), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
