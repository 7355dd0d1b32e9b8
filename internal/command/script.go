package command

import (
	"fmt"
	"iter"
	"strings"

	"github.com/vancomm/mines-engine/internal/mines"
)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// Script parses newline separated commands. Blank lines and lines starting
// with '#' are skipped.
func Script(text string) ([]Command, error) {
	var cmds []Command
	for i, line := range byPiece(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Run applies cmds in order until the game is over and reports how many were
// applied.
func Run(view *mines.View, cmds []Command) int {
	for i, cmd := range cmds {
		if view.Status() != mines.Playing {
			return i
		}
		cmd.Apply(view)
	}
	return len(cmds)
}
