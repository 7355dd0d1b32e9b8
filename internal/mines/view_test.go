package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed0Reveal00 = "" +
	". 1 # # # 1 . . . . \n" +
	". 1 # # # 2 1 . . . \n" +
	". 1 # # # # 2 1 . . \n" +
	". 1 # # # # # 1 . . \n" +
	". 1 # # # 2 1 1 . . \n" +
	". 1 2 3 2 1 . . 1 1 \n" +
	". . . . . . . . 1 # \n" +
	". . . . . 1 1 1 1 # \n" +
	". . . 1 1 2 # # # # \n" +
	". . . 1 # # # # # # \n"

const seed2Reveal00 = "" +
	"X # # # # # # # # # \n" +
	"# # # # # # # # # # \n" +
	"# # # # # # # # # # \n" +
	"# # # # # # # # # # \n" +
	"# # # # # # # # # # \n" +
	"# # # # # # # # # # \n" +
	"# # # # # # # # # # \n" +
	"# # # # # # # # # # \n" +
	"# # # # # # # # # # \n" +
	"# # # # # # # # # # \n"

func TestRevealGolden(t *testing.T) {
	v := Generate(0, 10, 10, 10)
	v.Reveal(0, 0)

	assert.Equal(t, seed0Reveal00, v.String())
	assert.Equal(t, Playing, v.Status())
	assert.Equal(t, 70, v.RevealedCount())
}

func TestRevealMineLoses(t *testing.T) {
	v := Generate(2, 10, 10, 10)
	v.Reveal(0, 0)

	assert.Equal(t, Lost, v.Status())
	assert.Equal(t, 0, v.RevealedCount())
	assert.Equal(t, TileExploded, v.Get(0, 0))
	assert.Equal(t, seed2Reveal00, v.String())
}

// floodRegion is an independent recursive model of what revealing a safe
// cell should uncover.
func floodRegion(b *Board, x, y int, seen map[int]bool) {
	i := b.index(x, y)
	if seen[i] {
		return
	}
	seen[i] = true
	if b.NeighborMines(x, y) != 0 {
		return
	}
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			if b.InBounds(xx, yy) {
				floodRegion(b, xx, yy, seen)
			}
		}
	}
}

func TestRevealFloodCompleteness(t *testing.T) {
	for seed := range uint32(30) {
		v := Generate(seed, 16, 16, 40)
		b := v.board

		sx, sy := -1, -1
		for i, c := range b.cells {
			x, y := b.coords(i)
			if c == Empty && b.NeighborMines(x, y) == 0 {
				sx, sy = x, y
				break
			}
		}
		require.NotEqual(t, -1, sx, "seed %d has no zero cell", seed)

		want := make(map[int]bool)
		floodRegion(b, sx, sy, want)

		v.Reveal(sx, sy)
		assert.Equal(t, len(want), v.RevealedCount(), "seed %d", seed)
		for i, tile := range v.tiles {
			x, y := b.coords(i)
			if want[i] {
				assert.Equal(t, Revealed, tile.State, "seed %d (%d, %d)", seed, x, y)
				assert.Equal(t, uint8(b.NeighborMines(x, y)), tile.Count)
			} else {
				assert.Equal(t, Hidden, tile.State, "seed %d (%d, %d)", seed, x, y)
			}
		}
	}
}

func TestRevealNumberedCellRevealsOnlyItself(t *testing.T) {
	v := newView(boardFromRows(
		"*..",
		"...",
		"...",
	))
	v.Reveal(1, 1)

	assert.Equal(t, Tile{State: Revealed, Count: 1}, v.At(1, 1))
	assert.Equal(t, 1, v.RevealedCount())
	assert.Equal(t, "# # # \n# 1 # \n# # # \n", v.String())
}

func TestRevealWins(t *testing.T) {
	v := newView(boardFromRows(
		"*..",
		"...",
		"...",
	))
	v.Reveal(2, 2)

	assert.Equal(t, Won, v.Status())
	assert.Equal(t, 8, v.RevealedCount())
	assert.Equal(t, TileHidden, v.Get(0, 0))
	assert.Equal(t, "# 1 . \n1 1 . \n. . . \n", v.String())
}

func TestRevealWinsStepByStep(t *testing.T) {
	v := newView(boardFromRows("*.*", "*.*"))

	v.Reveal(1, 0)
	assert.Equal(t, Playing, v.Status())
	v.Reveal(1, 0)
	assert.Equal(t, 1, v.RevealedCount(), "revealing twice counts once")
	v.Reveal(1, 1)
	assert.Equal(t, Won, v.Status())
	assert.Equal(t, 2, v.RevealedCount())
}

func TestRevealFlaggedSafeCellKeepsFlag(t *testing.T) {
	v := newView(boardFromRows("*..", "...", "..."))
	v.Flag(2, 2)
	v.Reveal(2, 2)

	assert.Equal(t, TileFlagged, v.Get(2, 2))
	assert.Equal(t, 0, v.RevealedCount())
	assert.Equal(t, Playing, v.Status())
}

func TestFlaggedCellsStopFlood(t *testing.T) {
	v := newView(boardFromRows(
		"....",
		"....",
		"...*",
	))
	v.Flag(0, 2)
	v.Reveal(0, 0)

	assert.Equal(t, TileFlagged, v.Get(0, 2))
	assert.Equal(t, ". . . . \n. . 1 1 \nF . 1 # \n", v.String())
	assert.Equal(t, 10, v.RevealedCount())
	assert.Equal(t, Playing, v.Status())
}

func TestFlagToggle(t *testing.T) {
	v := newView(boardFromRows("*..", "..."))

	v.Flag(0, 0)
	assert.Equal(t, TileFlagged, v.Get(0, 0))
	v.Flag(0, 0)
	assert.Equal(t, TileHidden, v.Get(0, 0))

	v.Reveal(2, 1)
	revealed := v.Get(2, 1)
	v.Flag(2, 1)
	assert.Equal(t, revealed, v.Get(2, 1), "revealed tiles cannot be flagged")
}

func TestOutOfBoundsActionsAreNoOps(t *testing.T) {
	v := Generate(0, 10, 10, 10)
	before := v.Tiles()

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {100, 100}} {
		v.Reveal(p[0], p[1])
		v.Flag(p[0], p[1])
		v.RevealAround(p[0], p[1])
	}

	assert.Equal(t, before, v.Tiles())
	assert.Equal(t, Playing, v.Status())
	assert.Equal(t, 0, v.RevealedCount())
}

func TestFinishedGameIgnoresActions(t *testing.T) {
	t.Run("lost", func(t *testing.T) {
		v := Generate(2, 10, 10, 10)
		v.Reveal(0, 0)
		require.Equal(t, Lost, v.Status())
		before := v.Tiles()

		for y := range 10 {
			for x := range 10 {
				v.Reveal(x, y)
				v.Flag(x, y)
				v.RevealAround(x, y)
			}
		}

		assert.Equal(t, before, v.Tiles())
		assert.Equal(t, Lost, v.Status())
		assert.Equal(t, 0, v.RevealedCount())
	})

	t.Run("won", func(t *testing.T) {
		v := newView(boardFromRows("*..", "...", "..."))
		v.Reveal(2, 2)
		require.Equal(t, Won, v.Status())
		before := v.Tiles()

		v.Flag(0, 0)
		v.Reveal(0, 0)
		v.RevealAround(1, 1)

		assert.Equal(t, before, v.Tiles())
		assert.Equal(t, Won, v.Status())
	})
}

func TestRevealAround(t *testing.T) {
	rows := []string{
		"*.*",
		"...",
		"...",
	}

	tests := []struct {
		name    string
		flags   [][2]int
		changed bool
	}{
		{"matching flags", [][2]int{{0, 0}, {2, 0}}, true},
		{"too few flags", [][2]int{{0, 0}}, false},
		{"too many flags", [][2]int{{0, 0}, {2, 0}, {0, 2}}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := newView(boardFromRows(rows...))
			v.Reveal(1, 1)
			require.Equal(t, TileRevealed2, v.Get(1, 1))
			for _, f := range test.flags {
				v.Flag(f[0], f[1])
			}
			before := v.Tiles()

			v.RevealAround(1, 1)

			if !test.changed {
				assert.Equal(t, before, v.Tiles())
				assert.Equal(t, 1, v.RevealedCount())
				return
			}
			assert.Equal(t, "F 2 F \n1 2 1 \n. . . \n", v.String())
			assert.Equal(t, 7, v.RevealedCount())
			assert.Equal(t, Won, v.Status())
		})
	}
}

func TestRevealAroundIgnoresCoveredTarget(t *testing.T) {
	v := newView(boardFromRows("*..", "...", "..."))
	v.Flag(0, 0)
	before := v.Tiles()

	v.RevealAround(1, 1)
	v.RevealAround(0, 0)

	assert.Equal(t, before, v.Tiles())
}

func TestRevealAroundHaltsAfterLoss(t *testing.T) {
	v := newView(boardFromRows(
		"...",
		"*..",
		"..*",
	))
	v.Reveal(1, 1)
	require.Equal(t, TileRevealed2, v.Get(1, 1))

	// wrong flag on (0, 0); the mine at (0, 1) is reached next
	v.Flag(0, 0)
	v.Flag(2, 2)
	v.RevealAround(1, 1)

	assert.Equal(t, Lost, v.Status())
	assert.Equal(t, TileExploded, v.Get(0, 1))
	assert.Equal(t, 1, v.RevealedCount())
	assert.Equal(t, "F # # \nX 2 # \n# # F \n", v.String())
}

func TestQueryOutOfBoundsPanics(t *testing.T) {
	v := Generate(0, 4, 3, 2)

	for _, f := range []func(){
		func() { v.Get(4, 0) },
		func() { v.Get(0, 3) },
		func() { v.Get(-1, 0) },
		func() { v.At(0, -1) },
		func() { v.GetByIndex(12) },
		func() { v.GetByIndex(-1) },
	} {
		_, panicked := recoverPrecondition(f)
		assert.True(t, panicked)
	}

	for i := range 12 {
		assert.Equal(t, TileHidden, v.GetByIndex(i))
	}
}

func TestGetByIndexMatchesGet(t *testing.T) {
	v := Generate(0, 10, 10, 10)
	v.Reveal(0, 0)

	for y := range v.Height() {
		for x := range v.Width() {
			assert.Equal(t, v.Get(x, y), v.GetByIndex(y*v.Width()+x))
		}
	}
	assert.Equal(t, v.Tiles()[57], v.GetByIndex(57))
}

func TestWonIffAllSafeCellsRevealed(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	for seed := range uint32(50) {
		v := Generate(seed, 8, 8, 10)
		for i, c := range v.board.cells {
			if c == Empty {
				x, y := v.board.coords(i)
				v.Reveal(x, y)
			}
			won := v.RevealedCount() == v.board.SafeCount()
			assert.Equal(t, won, v.Status() == Won, "seed %d", seed)
		}
		assert.Equal(t, Won, v.Status(), "seed %d", seed)
		for i, c := range v.board.cells {
			if c == Mine {
				assert.Equal(t, TileHidden, v.GetByIndex(i))
			}
		}
	}
}

func TestGameStatusText(t *testing.T) {
	for _, s := range []GameStatus{Playing, Won, Lost} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var got GameStatus
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}

	var s GameStatus
	assert.Error(t, s.UnmarshalText([]byte("paused")))
}
