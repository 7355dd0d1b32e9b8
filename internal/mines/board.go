package mines

import (
	"iter"
	"math/rand/v2"
)

type Cell uint8

const (
	Empty Cell = iota
	Mine
)

// Board is the hidden mine layout of a game. It is fixed by NewBoard and
// never changes afterwards.
type Board struct {
	width, height, mineCount int
	cells                    []Cell // y*width + x
}

// NewBoard lays out mineCount mines on a width x height grid. The layout is a
// function of the arguments alone: every call with the same seed, dimensions
// and mine count yields the same board.
//
// panics [PreconditionError]
func NewBoard(seed uint32, width, height, mineCount int) *Board {
	params := GameParams{
		Seed: seed, Width: width, Height: height, MineCount: mineCount,
	}
	if err := params.Validate(); err != nil {
		panic(err)
	}

	cells := make([]Cell, width*height)
	for i := range mineCount {
		cells[i] = Mine
	}

	r := rand.New(rand.NewPCG(uint64(seed), 0))
	r.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	return &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     cells,
	}
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

// SafeCount is the number of cells a player has to reveal to win.
func (b *Board) SafeCount() int {
	return b.width*b.height - b.mineCount
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

// panics [PreconditionError]
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		panic(preconditionf(
			"cell (%d, %d) is outside of %dx%d board", x, y, b.width, b.height,
		))
	}
	return b.cells[b.index(x, y)]
}

// NeighborMines counts mines among the up to eight cells surrounding (x, y).
// Positions past the edge of the grid are not counted.
func (b *Board) NeighborMines(x, y int) int {
	count := 0
	for nx, ny := range b.neighbors(x, y) {
		if b.cells[b.index(nx, ny)] == Mine {
			count++
		}
	}
	return count
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) coords(i int) (x, y int) {
	return i % b.width, i / b.width
}

// neighbors yields the in-bounds Moore neighbors of (x, y), column by column
// from the left.
func (b *Board) neighbors(x, y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !b.InBounds(nx, ny) {
					continue
				}
				if !yield(nx, ny) {
					return
				}
			}
		}
	}
}
