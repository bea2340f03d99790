package colony

import (
	"slices"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// AntView is the drawable state of one ant.
type AntView struct {
	ID       int
	Pos      geom.Vec
	Heading  float64
	Role     Role
	State    State
	Carrying bool
}

// FoodView is the drawable state of one pile.
type FoodView struct {
	ID     int
	Pos    geom.Vec
	Amount int
}

// Snapshot is a copy of everything a renderer needs for one frame. It
// shares no memory with the simulation.
type Snapshot struct {
	Width, Height float64
	Nest          geom.Rect
	Obstacles     []geom.Rect
	Ants          []AntView
	Food          []FoodView
	Pheromones    []Pheromone
	Stats         Stats

	AntSize, FoodSize, PheromoneSize float64
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Width:         s.arena.Width,
		Height:        s.arena.Height,
		Nest:          s.arena.Nest,
		Obstacles:     slices.Clone(s.arena.Obstacles),
		Ants:          make([]AntView, len(s.ants)),
		Food:          make([]FoodView, 0, s.food.Len()),
		Pheromones:    slices.Clone(s.pheromones.Markers()),
		Stats:         s.stats,
		AntSize:       s.conf.AntSize,
		FoodSize:      s.conf.FoodSize,
		PheromoneSize: s.conf.PheromoneSize,
	}
	for i := range s.ants {
		a := &s.ants[i]
		snap.Ants[i] = AntView{
			ID:       a.ID,
			Pos:      a.Pos,
			Heading:  a.Heading,
			Role:     a.Role,
			State:    a.State,
			Carrying: a.Carrying(),
		}
	}
	for _, f := range s.food.Piles() {
		snap.Food = append(snap.Food, FoodView{ID: f.ID, Pos: f.Pos, Amount: f.Amount})
	}
	return snap
}
