package mines

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// GameParams fully determines a board.
type GameParams struct {
	Seed                     uint32
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (seed uint32, w int, h int, mc int) {
	return p.Seed, p.Width, p.Height, p.MineCount
}

// Validate returns a [PreconditionError] describing the first parameter a
// board cannot be built from, or nil.
func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0:
		return preconditionf("width must be positive, got %d", p.Width)
	case p.Height <= 0:
		return preconditionf("height must be positive, got %d", p.Height)
	case p.MineCount <= 0:
		return preconditionf("mine count must be positive, got %d", p.MineCount)
	case p.MineCount >= p.Width*p.Height:
		return preconditionf(
			"%d mines do not leave a safe cell on a %dx%d board",
			p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Descriptor encodes the parameters as "width:height:mine_count:seed".
func (p GameParams) Descriptor() string {
	return fmt.Sprintf("%d:%d:%d:%d", p.Width, p.Height, p.MineCount, p.Seed)
}

func ParseDescriptor(descriptor string) (*GameParams, error) {
	parts := strings.Split(descriptor, ":")
	if len(parts) != 4 {
		return nil, fmt.Errorf(
			`invalid game descriptor "%s": want 4 fields, have %d`,
			descriptor, len(parts),
		)
	}

	var (
		p    GameParams
		err  error
		ints = []*int{&p.Width, &p.Height, &p.MineCount}
	)
	for i, dst := range ints {
		if *dst, err = strconv.Atoi(parts[i]); err != nil {
			return nil, fmt.Errorf(`invalid game descriptor "%s": %w`, descriptor, err)
		}
	}
	seed, err := strconv.ParseUint(parts[3], 10, 32)
	if err != nil {
		return nil, fmt.Errorf(`invalid game descriptor "%s": %w`, descriptor, err)
	}
	p.Seed = uint32(seed)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// NewGame is the non-panicking counterpart of [Generate] for callers that
// build parameters from untrusted input.
func NewGame(params GameParams) (view *View, err error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	defer func() {
		var pe PreconditionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &pe) {
				view, err = nil, pe
				return
			}
			panic(r)
		}
	}()

	return Generate(params.Unpack()), nil
}
