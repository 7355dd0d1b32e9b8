package mines

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gammazero/deque"
)

var Log *slog.Logger = slog.Default()

type GameStatus uint8

const (
	Playing GameStatus = iota
	Won
	Lost
)

func (s GameStatus) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// [GameStatus] implements [encoding.TextMarshaler]
func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// [GameStatus] implements [encoding.TextUnmarshaler]
func (s *GameStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "playing":
		*s = Playing
	case "won":
		*s = Won
	case "lost":
		*s = Lost
	default:
		return fmt.Errorf("unknown game status %q", text)
	}
	return nil
}

// View is a game in progress: the hidden board plus everything the player
// has uncovered or flagged so far. A View is not safe for concurrent use.
type View struct {
	board    *Board
	tiles    []Tile
	status   GameStatus
	revealed int
}

// Generate starts a new game on a freshly generated board.
//
// panics [PreconditionError]
func Generate(seed uint32, width, height, mineCount int) *View {
	view := newView(NewBoard(seed, width, height, mineCount))
	Log.Debug("generated board",
		slog.Uint64("seed", uint64(seed)),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("mineCount", mineCount),
	)
	return view
}

func newView(board *Board) *View {
	return &View{
		board: board,
		tiles: make([]Tile, len(board.cells)), // zero Tile is Hidden
	}
}

func (v *View) Width() int             { return v.board.width }
func (v *View) Height() int            { return v.board.height }
func (v *View) MineCount() int         { return v.board.mineCount }
func (v *View) Status() GameStatus     { return v.status }
func (v *View) RevealedCount() int     { return v.revealed }
func (v *View) InBounds(x, y int) bool { return v.board.InBounds(x, y) }

func (v *View) playable(x, y int) bool {
	return v.status == Playing && v.board.InBounds(x, y)
}

// Reveal uncovers (x, y). Stepping on a mine loses the game; a cell with no
// neighboring mines uncovers its whole zero-count region along with the
// numbered cells bordering it.
func (v *View) Reveal(x, y int) {
	if !v.playable(x, y) {
		return
	}

	start := v.board.index(x, y)
	if v.board.cells[start] == Mine {
		v.tiles[start] = Tile{State: Exploded}
		v.status = Lost
		Log.Debug("game lost", slog.Int("x", x), slog.Int("y", y))
		return
	}

	var queue deque.Deque[int]
	queue.PushBack(start)
	for queue.Len() != 0 {
		i := queue.PopFront()
		if v.tiles[i].State != Hidden {
			continue
		}
		cx, cy := v.board.coords(i)
		count := v.board.NeighborMines(cx, cy)
		v.tiles[i] = Tile{State: Revealed, Count: uint8(count)}
		v.revealed++
		if count != 0 {
			continue
		}
		for nx, ny := range v.board.neighbors(cx, cy) {
			queue.PushBack(v.board.index(nx, ny))
		}
	}

	if v.revealed == v.board.SafeCount() {
		v.status = Won
		Log.Debug("game won", slog.Int("revealed", v.revealed))
	}
}

// Flag toggles a flag on a covered cell.
func (v *View) Flag(x, y int) {
	if !v.playable(x, y) {
		return
	}
	i := v.board.index(x, y)
	switch v.tiles[i].State {
	case Hidden:
		v.tiles[i].State = Flagged
	case Flagged:
		v.tiles[i].State = Hidden
	}
}

// RevealAround chords a revealed cell: when the number of flags around it
// matches its mine count, every covered neighbor is revealed in turn. Once
// one of those reveals hits a mine the rest do nothing.
func (v *View) RevealAround(x, y int) {
	if !v.playable(x, y) {
		return
	}
	tile := v.tiles[v.board.index(x, y)]
	if tile.State != Revealed {
		return
	}

	flags := 0
	for nx, ny := range v.board.neighbors(x, y) {
		if v.tiles[v.board.index(nx, ny)].State == Flagged {
			flags++
		}
	}
	if flags != int(tile.Count) {
		return
	}

	for nx, ny := range v.board.neighbors(x, y) {
		if v.tiles[v.board.index(nx, ny)].State == Hidden {
			v.Reveal(nx, ny)
		}
	}
}

// At returns the tile at (x, y).
//
// panics [PreconditionError]
func (v *View) At(x, y int) Tile {
	if !v.board.InBounds(x, y) {
		panic(preconditionf(
			"tile (%d, %d) is outside of %dx%d board",
			x, y, v.board.width, v.board.height,
		))
	}
	return v.tiles[v.board.index(x, y)]
}

// panics [PreconditionError]
func (v *View) Get(x, y int) PrimitiveTile {
	return v.At(x, y).Primitive()
}

// panics [PreconditionError]
func (v *View) GetByIndex(i int) PrimitiveTile {
	if i < 0 || i >= len(v.tiles) {
		panic(preconditionf(
			"tile index %d is outside of [0, %d)", i, len(v.tiles),
		))
	}
	return v.tiles[i].Primitive()
}

// Tiles returns a row-major snapshot of every tile in primitive form.
func (v *View) Tiles() []PrimitiveTile {
	tiles := make([]PrimitiveTile, len(v.tiles))
	for i, t := range v.tiles {
		tiles[i] = t.Primitive()
	}
	return tiles
}

// String renders the player's view one row per line, e.g.
//
//	. 1 # #
//	. 1 F #
//
// Every symbol is followed by a space.
func (v *View) String() string {
	var b strings.Builder
	b.Grow(len(v.tiles)*2 + v.board.height)
	for y := range v.board.height {
		for x := range v.board.width {
			b.WriteByte(v.tiles[v.board.index(x, y)].Symbol())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
