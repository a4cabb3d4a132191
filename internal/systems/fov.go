package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/Mizzalini/roguelike/internal/domain"
	"github.com/Mizzalini/roguelike/pkg/logger"
)

// VisionRadius — радиус обзора игрока в клетках.
const VisionRadius = 6

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeFOV пересчитывает битсет Visible карты от точки обзора
// (рекурсивный Shadowcasting по прозрачности тайлов), после чего
// вливает его в Explored: исследованность только растет, никогда
// не очищается.
//
// Вызывается ровно один раз за ход, после всех мутаций мира.
func ComputeFOV(m *domain.GameMap, origin domain.Position, radius int) {
	for i := range m.Visible {
		m.Visible[i] = false
	}

	if radius <= 0 || !m.InBounds(origin.X, origin.Y) {
		logger.Log.WithFields(logrus.Fields{
			"component":    "fov_system",
			"observer_pos": origin,
			"radius":       radius,
		}).Warn("FOV calculation skipped for blind or misplaced observer.")
		return
	}

	// Центр всегда виден
	m.Visible[m.Index(origin.X, origin.Y)] = true

	for i := 0; i < 8; i++ {
		castLight(m, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i])
	}

	for i, visible := range m.Visible {
		if visible {
			m.Explored[i] = true
		}
	}
}

func castLight(m *domain.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			gx := cx + dx*xx + dy*xy
			gy := cy + dx*yx + dy*yy

			if m.InBounds(gx, gy) && float64(dx*dx+dy*dy) < radiusSq {
				m.Visible[m.Index(gx, gy)] = true
			}

			if blocked {
				// Идем вдоль стены
				if !m.Transparent(gx, gy) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else {
				// Шли по пустоте и наткнулись на стену
				if !m.Transparent(gx, gy) && j < radius {
					blocked = true
					castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}
