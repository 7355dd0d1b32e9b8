package handlers

import (
	"github.com/gorilla/schema"
	"github.com/vancomm/mines-engine/internal/mines"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type CreateNewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

type SeedDTO struct {
	Seed uint32 `schema:"seed,required"`
}

// ParseGameParams reads board parameters from a query. The seed is optional;
// ok reports whether one was given.
func ParseGameParams(src map[string][]string) (params mines.GameParams, ok bool, err error) {
	var dto CreateNewGameDTO
	if err = decoder.Decode(&dto, src); err != nil {
		return
	}
	params = mines.GameParams{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}
	if _, present := src["seed"]; !present {
		return
	}
	var seed SeedDTO
	if err = decoder.Decode(&seed, src); err != nil {
		return
	}
	params.Seed, ok = seed.Seed, true
	return
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	err := decoder.Decode(&pos, src)
	return pos, err
}

type GameSessionDTO struct {
	GameID        string           `json:"game_id"`
	Descriptor    string           `json:"descriptor"`
	Seed          uint32           `json:"seed"`
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	MineCount     int              `json:"mine_count"`
	Status        mines.GameStatus `json:"status"`
	RevealedCount int              `json:"revealed_count"`
	Tiles         []int            `json:"tiles"`
}

func NewGameSessionDTO(id string, params mines.GameParams, v *mines.View) *GameSessionDTO {
	tiles := v.Tiles()
	ordinals := make([]int, len(tiles))
	for i, t := range tiles {
		ordinals[i] = int(t)
	}
	return &GameSessionDTO{
		GameID:        id,
		Descriptor:    params.Descriptor(),
		Seed:          params.Seed,
		Width:         v.Width(),
		Height:        v.Height(),
		MineCount:     v.MineCount(),
		Status:        v.Status(),
		RevealedCount: v.RevealedCount(),
		Tiles:         ordinals,
	}
}
