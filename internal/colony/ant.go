package colony

import (
	"math/rand"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// Role is fixed when an ant hatches.
type Role uint8

const (
	Worker Role = iota
	Soldier
)

func (r Role) String() string {
	switch r {
	case Worker:
		return "Worker"
	case Soldier:
		return "Soldier"
	default:
		return "Unknown"
	}
}

// State is the behavioral state of an ant. Workers alternate between
// SeekingFood and ReturningToNest; soldiers are always Wandering.
type State uint8

const (
	SeekingFood State = iota
	ReturningToNest
	Wandering
)

func (s State) String() string {
	switch s {
	case SeekingFood:
		return "SeekingFood"
	case ReturningToNest:
		return "ReturningToNest"
	case Wandering:
		return "Wandering"
	default:
		return "Unknown"
	}
}

// Ant is a single agent. Role tags the variant: State and cooldown only
// carry meaning for workers.
type Ant struct {
	ID       int
	Pos      geom.Vec
	Heading  float64 // degrees in [0, 360)
	Speed    float64
	TurnRate float64
	Role     Role
	State    State

	cooldown int // ticks until the next pheromone drop
	size     float64
}

func newAnt(id int, pos geom.Vec, heading float64, role Role, conf *Config) Ant {
	a := Ant{
		ID:       id,
		Pos:      pos,
		Heading:  geom.Normalize(heading),
		Speed:    conf.AntSpeed,
		TurnRate: conf.TurnRate,
		Role:     role,
		size:     conf.AntSize,
	}
	if role == Soldier {
		a.State = Wandering
	}
	return a
}

// Rect returns the ant's collision box.
func (a *Ant) Rect() geom.Rect { return geom.Box(a.Pos, a.size, a.size) }

// Carrying reports whether the ant is bringing food home.
func (a *Ant) Carrying() bool {
	return a.Role == Worker && a.State == ReturningToNest
}

// Update runs one tick of the ant's behavior against the simulation's
// shared populations.
func (a *Ant) Update(s *Simulation) {
	switch a.Role {
	case Worker:
		if target, ok := a.forage(s); ok {
			a.Heading = geom.Steer(a.Heading, geom.AngleTo(a.Pos, target), a.TurnRate)
		} else {
			a.wander(s.rng)
		}
	default:
		a.wander(s.rng)
	}
	a.move(&s.arena, s.rng)
}

// forage applies the worker state machine and returns the point to steer
// toward, if any.
func (a *Ant) forage(s *Simulation) (geom.Vec, bool) {
	switch a.State {
	case SeekingFood:
		// trail first, then food in sight
		target, ok := s.pheromones.FindNearby(a.Pos, s.conf.PheromoneRadius)
		if !ok {
			if f, dist, found := s.food.Nearest(a.Pos); found && dist < s.conf.FoodRadius {
				target, ok = f.Pos, true
			}
		}

		if f, hit := s.food.Colliding(a.Rect()); hit {
			s.food.TakeChunk(f)
			a.State = ReturningToNest
			s.stats.Collected++
		}
		return target, ok

	case ReturningToNest:
		a.dropPheromone(s)
		if a.Rect().Overlaps(s.arena.Nest) {
			a.State = SeekingFood
			a.Heading = geom.Normalize(a.Heading + 180)
			s.stats.Delivered++
		}
		return s.arena.Nest.Center(), true
	}
	return geom.Vec{}, false
}

func (a *Ant) dropPheromone(s *Simulation) {
	if a.cooldown > 0 {
		a.cooldown--
		return
	}
	s.pheromones.Deposit(a.Pos)
	a.cooldown = s.conf.DropInterval
	s.stats.Deposits++
}

// wander perturbs the heading by a uniform amount in [-TurnRate, TurnRate].
func (a *Ant) wander(rng *rand.Rand) {
	a.Heading = geom.Normalize(a.Heading + (rng.Float64()*2-1)*a.TurnRate)
}

// move advances the ant along its heading. Crossing a border undoes the
// move on that axis only and mirrors the heading; hitting a wall undoes
// the whole move and throws the heading somewhere in [90, 270) degrees
// away.
func (a *Ant) move(arena *Arena, rng *rand.Rand) {
	old := a.Pos
	a.Pos = a.Pos.Add(geom.FromHeading(a.Heading, a.Speed))

	if arena.outX(a.Pos.X) {
		a.Heading = 180 - a.Heading
		a.Pos.X = old.X
	}
	if arena.outY(a.Pos.Y) {
		a.Heading = -a.Heading
		a.Pos.Y = old.Y
	}

	if arena.Blocked(a.Rect()) {
		a.Pos = old
		a.Heading += 90 + rng.Float64()*180
	}
	a.Heading = geom.Normalize(a.Heading)
}
