package mines

type TileState uint8

const (
	Hidden TileState = iota
	Revealed
	Exploded
	Flagged
)

// Tile is what the player knows about a single cell.
type Tile struct {
	State TileState
	Count uint8 // neighbor mines; only meaningful when Revealed
}

// Primitive flattens the tile into its ordinal form.
//
// panics [PreconditionError]
func (t Tile) Primitive() PrimitiveTile {
	switch t.State {
	case Hidden:
		return TileHidden
	case Revealed:
		if t.Count > 8 {
			panic(preconditionf("revealed tile with %d neighbor mines", t.Count))
		}
		return TileRevealed0 + PrimitiveTile(t.Count)
	case Exploded:
		return TileExploded
	case Flagged:
		return TileFlagged
	default:
		panic(preconditionf("unknown tile state %d", t.State))
	}
}

func (t Tile) Symbol() byte {
	return t.Primitive().Symbol()
}

// PrimitiveTile is the flat twelve-value form of a [Tile] handed to
// front-ends. The ordinals are part of the wire contract and must not be
// reordered.
type PrimitiveTile uint8

const (
	TileRevealed0 PrimitiveTile = iota
	TileRevealed1
	TileRevealed2
	TileRevealed3
	TileRevealed4
	TileRevealed5
	TileRevealed6
	TileRevealed7
	TileRevealed8
	TileHidden
	TileExploded
	TileFlagged
)

// Revealed reports the neighbor mine count of a revealed tile.
func (p PrimitiveTile) Revealed() (count int, ok bool) {
	if p <= TileRevealed8 {
		return int(p - TileRevealed0), true
	}
	return 0, false
}

// Symbol is the glyph used by the text rendering of a board.
func (p PrimitiveTile) Symbol() byte {
	switch p {
	case TileRevealed0:
		return '.'
	case TileHidden:
		return '#'
	case TileExploded:
		return 'X'
	case TileFlagged:
		return 'F'
	}
	if n, ok := p.Revealed(); ok {
		return byte('0' + n)
	}
	return '?'
}

func (p PrimitiveTile) String() string {
	return string(p.Symbol())
}
