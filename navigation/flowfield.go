// Package navigation provides the flow field: a precomputed grid of
// direction vectors that agents sample by their occupying cell.
package navigation

import (
	"math"

	"github.com/lixenwraith/steersim/vmath"
)

// Neighbor offsets in scan order: N, NE, E, SE, S, SW, W, NW
var dirOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Weighted edge costs: cardinal = 10, diagonal = 14 (≈10√2)
// Approximates Euclidean distance to eliminate Chebyshev artifacts
const (
	costCardinal    = 10
	costDiagonal    = 14
	costUnreachable = 1<<30 - 1
)

var dirCosts = [8]int{
	costCardinal, costDiagonal, costCardinal, costDiagonal,
	costCardinal, costDiagonal, costCardinal, costDiagonal,
}

// --- Min-heap for Dijkstra ---

type heapEntry struct {
	idx  int // Flat grid index (row*cols + col)
	dist int // Weighted distance from target
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].dist <= (*h)[i].dist {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].dist < (*h)[left].dist {
			smallest = right
		}
		if (*h)[i].dist <= (*h)[smallest].dist {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// FlowField is a grid of unit direction vectors covering the world at a
// fixed spatial resolution. Cells without a sampled direction report absent;
// agents treat that as "no steering this frame".
type FlowField struct {
	Cols, Rows int

	// Resolution is the world-unit size of one grid cell
	Resolution float64

	dirs    []vmath.Vec2
	present []bool

	// Reusable heap buffer to reduce allocations across recomputes
	heap minHeap
}

// NewFlowField creates an empty field of cols x rows cells.
func NewFlowField(cols, rows int, resolution float64) *FlowField {
	size := cols * rows
	return &FlowField{
		Cols:       cols,
		Rows:       rows,
		Resolution: resolution,
		dirs:       make([]vmath.Vec2, size),
		present:    make([]bool, size),
		heap:       make(minHeap, 0, size/4),
	}
}

// CellOf maps a world position to its occupying grid cell.
// Cells may fall outside the grid; Sample handles that.
func (f *FlowField) CellOf(p vmath.Vec2) (col, row int) {
	return int(math.Floor(p.X / f.Resolution)), int(math.Floor(p.Y / f.Resolution))
}

// Sample returns the direction vector of a cell. The second return is false
// for cells outside the grid or without a populated direction.
func (f *FlowField) Sample(col, row int) (vmath.Vec2, bool) {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return vmath.Zero, false
	}
	idx := row*f.Cols + col
	if !f.present[idx] {
		return vmath.Zero, false
	}
	return f.dirs[idx], true
}

// Set populates one cell with a direction. Out-of-grid cells are ignored.
func (f *FlowField) Set(col, row int, dir vmath.Vec2) {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return
	}
	idx := row*f.Cols + col
	f.dirs[idx] = dir
	f.present[idx] = true
}

// Clear removes every sampled direction.
func (f *FlowField) Clear() {
	for i := range f.present {
		f.present[i] = false
		f.dirs[i] = vmath.Zero
	}
}

// Fill populates every cell with the same direction.
func (f *FlowField) Fill(dir vmath.Vec2) {
	for i := range f.dirs {
		f.dirs[i] = dir
		f.present[i] = true
	}
}

// BlockChecker reports whether a cell blocks navigation.
type BlockChecker func(col, row int) bool

// Compute populates the field with directions flowing toward the target
// cell around blocked cells.
//
// Phase 1: weighted Dijkstra from the target (cardinal=10, diagonal=14)
// Phase 2: per-cell gradient — point at the neighbor with minimum distance
//
// Blocked and unreachable cells are left unsampled. The target cell gets the
// zero vector, which brakes arriving agents.
func (f *FlowField) Compute(targetCol, targetRow int, isBlocked BlockChecker) {
	if targetCol < 0 || targetRow < 0 || targetCol >= f.Cols || targetRow >= f.Rows {
		f.Clear()
		return
	}

	size := f.Cols * f.Rows
	w := f.Cols

	dist := make([]int, size)
	for i := range dist {
		dist[i] = costUnreachable
		f.present[i] = false
		f.dirs[i] = vmath.Zero
	}

	targetIdx := targetRow*w + targetCol
	dist[targetIdx] = 0

	f.heap = f.heap[:0]
	f.heap.push(heapEntry{idx: targetIdx})

	for len(f.heap) > 0 {
		entry := f.heap.pop()
		if entry.dist > dist[entry.idx] {
			continue // Stale entry
		}

		cx := entry.idx % w
		cy := entry.idx / w

		for d, off := range dirOffsets {
			nx := cx + off[0]
			ny := cy + off[1]

			if nx < 0 || ny < 0 || nx >= f.Cols || ny >= f.Rows {
				continue
			}
			if isBlocked(nx, ny) {
				continue
			}

			// Diagonal corner cutting prevention
			if off[0] != 0 && off[1] != 0 {
				if isBlocked(cx+off[0], cy) || isBlocked(cx, cy+off[1]) {
					continue
				}
			}

			nIdx := ny*w + nx
			newDist := entry.dist + dirCosts[d]
			if newDist < dist[nIdx] {
				dist[nIdx] = newDist
				f.heap.push(heapEntry{idx: nIdx, dist: newDist})
			}
		}
	}

	// Phase 2: steepest-descent gradient into unit direction vectors
	f.present[targetIdx] = true

	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			idx := y*w + x
			d := dist[idx]
			if d >= costUnreachable || d == 0 {
				continue
			}

			bestDist := d
			bestOff := [2]int{}
			found := false

			for _, off := range dirOffsets {
				nx := x + off[0]
				ny := y + off[1]
				if nx < 0 || ny < 0 || nx >= f.Cols || ny >= f.Rows {
					continue
				}
				nDist := dist[ny*w+nx]
				if nDist >= bestDist {
					continue
				}
				if off[0] != 0 && off[1] != 0 {
					if isBlocked(x+off[0], y) || isBlocked(x, y+off[1]) {
						continue
					}
				}
				bestDist = nDist
				bestOff = off
				found = true
			}

			if found {
				f.dirs[idx] = vmath.Vec2{X: float64(bestOff[0]), Y: float64(bestOff[1])}.Normalize()
				f.present[idx] = true
			}
		}
	}
}
