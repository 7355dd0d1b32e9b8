package config

import (
	"fmt"
	"os"
	"strconv"
)

// Limits bound what clients may ask the server to allocate.
type Limits struct {
	MaxWidth  int
	MaxHeight int
	MaxGames  int
}

func DefaultLimits() Limits {
	return Limits{
		MaxWidth:  100,
		MaxHeight: 100,
		MaxGames:  10000,
	}
}

func lookupPositive(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", key, v)
	}
	*dst = v
	return nil
}

func NewLimits() (*Limits, error) {
	limits := DefaultLimits()

	if err := lookupPositive("MINES_MAX_WIDTH", &limits.MaxWidth); err != nil {
		return nil, err
	}
	if err := lookupPositive("MINES_MAX_HEIGHT", &limits.MaxHeight); err != nil {
		return nil, err
	}
	if err := lookupPositive("MINES_MAX_GAMES", &limits.MaxGames); err != nil {
		return nil, err
	}

	return &limits, nil
}

func (l Limits) AllowsBoard(width, height int) bool {
	return width <= l.MaxWidth && height <= l.MaxHeight
}
