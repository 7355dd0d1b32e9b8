package handlers

import (
	"math/rand/v2"
	"sync"

	"github.com/vancomm/mines-engine/internal/command"
	"github.com/vancomm/mines-engine/internal/mines"
)

// session is a live game. All access to view goes through mu.
type session struct {
	mu     sync.Mutex
	id     string
	params mines.GameParams
	view   *mines.View
}

func (s *session) dto() *GameSessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	return NewGameSessionDTO(s.id, s.params, s.view)
}

func (s *session) render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view.String()
}

// run applies cmds and returns the resulting state along with how many of
// them were applied.
func (s *session) run(cmds []command.Command) (*GameSessionDTO, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := command.Run(s.view, cmds)
	return NewGameSessionDTO(s.id, s.params, s.view), applied
}

// seedSource hands out seeds for games created without one.
type seedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *seedSource) next() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Uint32()
}
