// Package colony runs the ant foraging simulation: workers look for food,
// carry it back to the nest and lay pheromone trails that other workers
// follow, while soldiers wander. Everything advances in discrete ticks
// through Simulation.Step.
package colony

import (
	"errors"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// ErrStopped is returned by Step once Stop has been called.
var ErrStopped = errors.New("simulation stopped")

// Stats counts what the colony has done so far.
type Stats struct {
	Tick      int // completed steps
	Collected int // chunks picked up from piles
	Delivered int // chunks brought back to the nest
	Deposits  int // pheromone markers dropped
}

// Simulation owns every population of a run and advances them one tick
// at a time. It is not safe for concurrent use, except for Stop.
type Simulation struct {
	conf       Config
	seed       int64
	arena      Arena
	ants       []Ant
	food       *FoodSupply
	pheromones *PheromoneField
	stats      Stats
	stopped    atomic.Bool
	rng        *rand.Rand
}

// New validates conf and builds a populated simulation: ants around the
// nest center and food piles spread over the arena.
func New(conf Config) (*Simulation, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := newEmpty(conf, seed)
	s.spawnAnts()
	if err := s.spawnFood(); err != nil {
		return nil, err
	}
	return s, nil
}

// newEmpty returns a simulation with its arena but no ants or food.
func newEmpty(conf Config, seed int64) *Simulation {
	return &Simulation{
		conf:       conf,
		seed:       seed,
		arena:      NewArena(conf),
		food:       NewFoodSupply(conf.FoodSize),
		pheromones: NewPheromoneField(conf.PheromoneStrength),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (s *Simulation) spawnAnts() {
	center := s.arena.Nest.Center()
	j := s.conf.SpawnJitter
	s.ants = make([]Ant, 0, s.conf.TotalAnts)
	for i := 0; i < s.conf.TotalAnts; i++ {
		pos := geom.Vec{
			X: center.X + float64(s.rng.Intn(2*j+1)-j),
			Y: center.Y + float64(s.rng.Intn(2*j+1)-j),
		}
		pos.X = math.Min(math.Max(pos.X, 1), s.arena.Width-1)
		pos.Y = math.Min(math.Max(pos.Y, 1), s.arena.Height-1)

		role := Soldier
		if s.rng.Float64() < s.conf.WorkerRatio {
			role = Worker
		}
		s.ants = append(s.ants, newAnt(i, pos, s.rng.Float64()*360, role, &s.conf))
	}
}

// Step advances the simulation by one tick: every ant acts in order,
// seeing what earlier ants did this tick, then the pheromone field decays
// and spent entities are dropped.
func (s *Simulation) Step() error {
	if s.stopped.Load() {
		return ErrStopped
	}
	for i := range s.ants {
		s.ants[i].Update(s)
	}
	s.pheromones.DecayTick()
	s.food.Reap()
	s.stats.Tick++
	return nil
}

// Stop makes every later Step a no-op returning ErrStopped. It may be
// called from any goroutine.
func (s *Simulation) Stop() { s.stopped.Store(true) }

// Stopped reports whether Stop was called.
func (s *Simulation) Stopped() bool { return s.stopped.Load() }

// Config returns the parameters the run was built with.
func (s *Simulation) Config() Config { return s.conf }

// Seed returns the seed actually used for the random source.
func (s *Simulation) Seed() int64 { return s.seed }

// Arena returns the static layout.
func (s *Simulation) Arena() Arena { return s.arena }

// Stats returns the running counters.
func (s *Simulation) Stats() Stats { return s.stats }

// Ants returns the ants in update order. The slice must not be modified
// by the caller.
func (s *Simulation) Ants() []Ant { return s.ants }

// Food returns the live food supply.
func (s *Simulation) Food() *FoodSupply { return s.food }

// Pheromones returns the pheromone field.
func (s *Simulation) Pheromones() *PheromoneField { return s.pheromones }
