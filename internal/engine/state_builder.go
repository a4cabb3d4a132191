package engine

import (
	"sort"
	"time"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/pkg/api"
	"github.com/Mizzalini/roguelike/pkg/utils"
)

// BuildState собирает персональный снимок мира для клиента.
// В снимок попадает только то, что игрок видит или когда-либо видел;
// накопленные события хода уходят вместе со снимком и очищаются.
func (g *Engine) BuildState(responseType string) *api.ServerResponse {
	m := g.Map

	// 1. Тайлы: светлая пара в поле зрения, темная — для исследованных
	var tiles []api.TileView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			if !m.Explored[idx] {
				continue
			}

			tile := m.Tiles[idx]
			glyph := tile.Dark
			if m.Visible[idx] {
				glyph = tile.Light
			}

			tiles = append(tiles, api.TileView{
				X:          x,
				Y:          y,
				Symbol:     string(glyph.Char()),
				Color:      glyph.HexColor(),
				IsVisible:  m.Visible[idx],
				IsExplored: true,
			})
		}
	}

	// 2. Сущности: только в поле зрения, по ярусам (трупы под живыми)
	var entities []api.EntityView
	m.ForEach(func(id types.EntityID, e *domain.Entity) {
		if !m.Visible[m.Index(e.Pos.X, e.Pos.Y)] {
			return
		}
		entities = append(entities, api.EntityView{
			ID:     id.String(),
			X:      e.Pos.X,
			Y:      e.Pos.Y,
			Symbol: string(e.Glyph.Char()),
			Color:  e.Glyph.HexColor(),
			Name:   e.Name,
			Order:  uint8(e.Order),
		})
	})
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Order < entities[j].Order
	})

	// 3. Здоровье игрока
	var health *api.HealthView
	if player := m.Get(g.PlayerID); player != nil && player.Fighter != nil {
		health = &api.HealthView{
			HP:    player.Fighter.HP,
			MaxHP: player.Fighter.MaxHP,
		}
	}

	// 4. События хода
	now := time.Now().UnixMilli()
	var logs []api.LogEntry
	for _, ev := range g.DrainEvents() {
		logs = append(logs, api.LogEntry{
			ID:        utils.GenerateID(),
			Text:      ev.Text,
			Color:     ev.Color,
			Kind:      ev.Kind,
			Timestamp: now,
		})
	}

	return &api.ServerResponse{
		Type:     responseType,
		Status:   g.Status.String(),
		Turn:     g.Turn,
		Grid:     &api.GridMeta{Width: m.Width, Height: m.Height},
		Map:      tiles,
		Entities: entities,
		Player:   health,
		Logs:     logs,
	}
}
