// Package command implements the plain-text move protocol spoken over
// websockets, batch requests and replay scripts:
//
//	o <x> <y>  reveal
//	f <x> <y>  toggle flag
//	c <x> <y>  reveal around (chord)
//	g          no-op, fetch state
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/mines-engine/internal/mines"
)

type Verb string

const (
	Noop  Verb = "g"
	Open  Verb = "o"
	Flag  Verb = "f"
	Chord Verb = "c"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
)

// Maps known verbs to number of arguments
var verbNargs = map[Verb]int{
	Noop:  0,
	Open:  2,
	Flag:  2,
	Chord: 2,
}

type Command struct {
	Verb Verb
	X, Y int
}

func (c Command) String() string {
	if c.Verb == Noop {
		return string(c.Verb)
	}
	return fmt.Sprintf("%s %d %d", c.Verb, c.X, c.Y)
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int: %w", err)
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int: %w", err)
		return
	}
	return
}

// Parse reads a single command. Coordinates are not checked against any
// board: moves outside the grid are harmless no-ops for the engine.
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrUnknownCommand
	}
	verb := Verb(parts[0])
	nargs, ok := verbNargs[verb]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"%w: %s takes %d, have %d", ErrArgCount, verb, nargs, len(parts)-1,
		)
	}
	cmd := Command{Verb: verb}
	if nargs == 2 {
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return Command{}, err
		}
		cmd.X, cmd.Y = x, y
	}
	return cmd, nil
}

func (c Command) Apply(view *mines.View) {
	switch c.Verb {
	case Open:
		view.Reveal(c.X, c.Y)
	case Flag:
		view.Flag(c.X, c.Y)
	case Chord:
		view.RevealAround(c.X, c.Y)
	}
}
