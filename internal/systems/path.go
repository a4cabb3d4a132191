package systems

import (
	"container/heap"

	"github.com/Mizzalini/roguelike/internal/core/types"
	"github.com/Mizzalini/roguelike/internal/domain"
)

// Стоимости шагов. Диагональ дороже кардинального шага (2:3),
// чтобы маршруты не "пилили" зигзагом без нужды.
const (
	costCardinal = 2
	costDiagonal = 3

	// crowdPenalty — надбавка к цене клетки, занятой блокирующей сущностью.
	// Меньше — враги толпятся в колонну в коридорах, больше — обходят
	// дальними путями и окружают.
	crowdPenalty = 10
)

// Порядок обхода соседей фиксирован: поиск детерминирован для данного
// состояния карты.
var neighborSteps = [8]struct{ dx, dy, cost int }{
	{0, -1, costCardinal},
	{-1, 0, costCardinal},
	{1, 0, costCardinal},
	{0, 1, costCardinal},
	{-1, -1, costDiagonal},
	{1, -1, costDiagonal},
	{-1, 1, costDiagonal},
	{1, 1, costDiagonal},
}

// BuildCostField строит свежее поле цен на этот ход: 0 — непроходимо,
// иначе базовая единица плюс штраф за толпу, если клетку держит
// блокирующая сущность. Поле снимается один раз до ходов AI, чтобы все
// враги видели согласованную картину занятости.
func BuildCostField(m *domain.GameMap) []int {
	field := make([]int, m.Width*m.Height)

	for i, tile := range m.Tiles {
		if tile.Walkable {
			field[i] = 1
		}
	}

	m.ForEach(func(_ types.EntityID, e *domain.Entity) {
		if e.BlocksMovement {
			idx := m.Index(e.Pos.X, e.Pos.Y)
			if field[idx] > 0 {
				field[idx] += crowdPenalty
			}
		}
	})

	return field
}

// FindPath ищет кратчайший маршрут по взвешенной сетке (Дейкстра,
// 8 направлений). Цена шага = цена клетки назначения, умноженная на
// вес направления. Возвращаемый маршрут НЕ содержит стартовой клетки;
// nil — если цель недостижима.
func FindPath(m *domain.GameMap, cost []int, start, goal domain.Position) []domain.Position {
	if !m.InBounds(goal.X, goal.Y) || start == goal {
		return nil
	}

	size := m.Width * m.Height
	startIdx := m.Index(start.X, start.Y)
	goalIdx := m.Index(goal.X, goal.Y)

	const unreached = int(^uint(0) >> 1)
	dist := make([]int, size)
	prev := make([]int, size)
	for i := range dist {
		dist[i] = unreached
		prev[i] = -1
	}
	dist[startIdx] = 0

	pq := make(searchQueue, 0, 64)
	heap.Push(&pq, &searchNode{cell: startIdx, dist: 0})
	seq := 1

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*searchNode)
		if cur.dist > dist[cur.cell] {
			continue // устаревшая запись
		}
		if cur.cell == goalIdx {
			break
		}

		cx := cur.cell % m.Width
		cy := cur.cell / m.Width

		for _, step := range neighborSteps {
			nx, ny := cx+step.dx, cy+step.dy
			if !m.InBounds(nx, ny) {
				continue
			}
			nIdx := m.Index(nx, ny)
			cellCost := cost[nIdx]
			if cellCost <= 0 {
				continue // непроходимо
			}

			next := cur.dist + cellCost*step.cost
			if next < dist[nIdx] {
				dist[nIdx] = next
				prev[nIdx] = cur.cell
				heap.Push(&pq, &searchNode{cell: nIdx, dist: next, seq: seq})
				seq++
			}
		}
	}

	if prev[goalIdx] < 0 {
		return nil
	}

	// Восстанавливаем маршрут от цели к старту, старт не включаем
	var path []domain.Position
	for cell := goalIdx; cell != startIdx; cell = prev[cell] {
		path = append(path, domain.Position{X: cell % m.Width, Y: cell / m.Width})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// searchNode — элемент очереди приоритетов поиска пути.
type searchNode struct {
	cell  int // линейный индекс клетки
	dist  int // накопленная цена от старта
	seq   int // порядок вставки: детерминированный тай-брейк
	index int // позиция в куче (нужна heap.Fix/Remove)
}

// searchQueue реализует heap.Interface (MinHeap по dist).
type searchQueue []*searchNode

func (pq searchQueue) Len() int { return len(pq) }

func (pq searchQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq searchQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *searchQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*searchNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *searchQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}
