package colony

import (
	"math"
	"math/rand"
	"testing"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

func TestBoundaryBounce(t *testing.T) {
	tests := []struct {
		name        string
		pos         geom.Vec
		heading     float64
		wantHeading float64
		wantX       bool // x reverted
		wantY       bool // y reverted
	}{
		{"left wall", geom.Vec{X: 1, Y: 300}, 170, 10, true, false},
		{"right wall", geom.Vec{X: 799, Y: 300}, 20, 160, true, false},
		{"top wall", geom.Vec{X: 400, Y: 1}, 260, 100, false, true},
		{"bottom wall", geom.Vec{X: 400, Y: 599}, 80, 280, false, true},
		{"corner", geom.Vec{X: 1, Y: 1}, 225, 45, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, emptyConfig())
			a := &s.ants[placeAnt(s, tt.pos, tt.heading, Soldier)]
			step := geom.FromHeading(tt.heading, a.Speed)

			a.move(&s.arena, s.rng)

			if math.Abs(a.Heading-tt.wantHeading) > 1e-9 {
				t.Errorf("heading = %v, want %v", a.Heading, tt.wantHeading)
			}
			wantX, wantY := tt.pos.X+step.X, tt.pos.Y+step.Y
			if tt.wantX {
				wantX = tt.pos.X
			}
			if tt.wantY {
				wantY = tt.pos.Y
			}
			if a.Pos.X != wantX || a.Pos.Y != wantY {
				t.Errorf("pos = %v, want (%v, %v)", a.Pos, wantX, wantY)
			}
		})
	}
}

func TestObstacleDeflection(t *testing.T) {
	conf := emptyConfig()
	conf.Obstacles = []geom.Rect{{X: 100, Y: 100, Width: 20, Height: 100}}
	s := newTestSim(t, conf)
	start := geom.Vec{X: 97, Y: 150}

	for seed := int64(0); seed < 200; seed++ {
		s.ants = s.ants[:0]
		s.rng = rand.New(rand.NewSource(seed))
		a := &s.ants[placeAnt(s, start, 0, Soldier)]

		a.move(&s.arena, s.rng)

		if a.Pos != start {
			t.Fatalf("seed %d: pos = %v, want reverted to %v", seed, a.Pos, start)
		}
		if d := geom.Normalize(a.Heading - 0); d < 90 || d >= 270 {
			t.Fatalf("seed %d: deflection %v outside [90,270)", seed, d)
		}
	}
}

func TestWanderBounded(t *testing.T) {
	s := newTestSim(t, emptyConfig())
	a := &s.ants[placeAnt(s, geom.Vec{X: 400, Y: 300}, 0, Soldier)]
	for i := 0; i < 1000; i++ {
		before := a.Heading
		a.wander(s.rng)
		if a.Heading < 0 || a.Heading >= 360 {
			t.Fatalf("heading %v outside [0,360)", a.Heading)
		}
		if d := geom.AngularDistance(before, a.Heading); d > a.TurnRate+1e-9 {
			t.Fatalf("wander turned %v degrees", d)
		}
	}
}

func TestSoldierIgnoresFood(t *testing.T) {
	s := newTestSim(t, emptyConfig())
	f := s.food.Add(geom.Vec{X: 200, Y: 200}, 5)
	s.pheromones.Deposit(geom.Vec{X: 210, Y: 200})
	i := placeAnt(s, geom.Vec{X: 200, Y: 200}, 0, Soldier)

	for tick := 0; tick < 20; tick++ {
		if err := s.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if f.Amount != 5 {
		t.Fatalf("soldier took food: amount %d", f.Amount)
	}
	if a := s.ants[i]; a.State != Wandering || a.Carrying() {
		t.Fatalf("soldier state = %v carrying %v", a.State, a.Carrying())
	}
}

func TestWorkerPicksUpFood(t *testing.T) {
	tests := []struct {
		name     string
		heading  float64
		maxTicks int
	}{
		{"facing the pile", 0, 40},
		{"broadside", 90, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := emptyConfig()
			conf.Nest = geom.Rect{X: 700, Y: 500, Width: 40, Height: 40}
			s := newTestSim(t, conf)
			pile := s.food.Add(geom.Vec{X: 400, Y: 300}, conf.FoodPerPile)
			i := placeAnt(s, geom.Vec{X: 360, Y: 300}, tt.heading, Worker)

			ticks := 0
			for s.ants[i].State != ReturningToNest {
				if ticks == tt.maxTicks {
					t.Fatalf("no pickup after %d ticks, ant at %v", ticks, s.ants[i].Pos)
				}
				if err := s.Step(); err != nil {
					t.Fatal(err)
				}
				ticks++
			}
			if pile.Amount != conf.FoodPerPile-1 {
				t.Fatalf("pile amount = %d, want %d", pile.Amount, conf.FoodPerPile-1)
			}
			if !s.ants[i].Carrying() || s.stats.Collected != 1 {
				t.Fatalf("carrying %v collected %d", s.ants[i].Carrying(), s.stats.Collected)
			}

			for tick := 0; tick < 10; tick++ {
				if err := s.Step(); err != nil {
					t.Fatal(err)
				}
			}
			if pile.Amount != conf.FoodPerPile-1 {
				t.Fatalf("returning worker kept eating: amount %d", pile.Amount)
			}
		})
	}
}

func TestWorkerTurnsAroundAtNest(t *testing.T) {
	for _, heading := range []float64{0, 30, 179.5, 300} {
		conf := emptyConfig()
		s := newTestSim(t, conf)
		a := &s.ants[placeAnt(s, s.arena.Nest.Center(), heading, Worker)]
		a.State = ReturningToNest

		target, ok := a.forage(s)

		if a.State != SeekingFood || a.Carrying() {
			t.Fatalf("heading %v: state %v after reaching nest", heading, a.State)
		}
		if !ok || target != s.arena.Nest.Center() {
			t.Fatalf("heading %v: target %v %v, want nest center", heading, target, ok)
		}
		if d := geom.AngularDistance(heading, a.Heading); math.Abs(d-180) > 1e-9 {
			t.Fatalf("heading %v: turned to %v", heading, a.Heading)
		}
		if s.stats.Delivered != 1 {
			t.Fatalf("Delivered = %d, want 1", s.stats.Delivered)
		}
	}
}

func TestWorkerTurnsAroundDuringStep(t *testing.T) {
	conf := emptyConfig()
	conf.AntSpeed = 0
	conf.TurnRate = 0
	s := newTestSim(t, conf)
	i := placeAnt(s, geom.Vec{X: 395, Y: 310}, 30, Worker)
	s.ants[i].State = ReturningToNest

	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if a := s.ants[i]; a.State != SeekingFood || a.Heading != 210 {
		t.Fatalf("state %v heading %v, want SeekingFood at 210", a.State, a.Heading)
	}
}

func TestReturningWorkerDropInterval(t *testing.T) {
	conf := emptyConfig()
	conf.DropInterval = 10
	s := newTestSim(t, conf)
	i := placeAnt(s, geom.Vec{X: 100, Y: 100}, 0, Worker)
	s.ants[i].State = ReturningToNest

	for tick := 1; tick <= 23; tick++ {
		if err := s.Step(); err != nil {
			t.Fatal(err)
		}
		want := (tick + 10) / 11 // drops on ticks 1, 12, 23
		if s.stats.Deposits != want {
			t.Fatalf("tick %d: %d deposits, want %d", tick, s.stats.Deposits, want)
		}
	}
	if s.pheromones.Len() != 3 {
		t.Fatalf("field holds %d markers, want 3", s.pheromones.Len())
	}
	if s.ants[i].State != ReturningToNest {
		t.Fatal("worker reached the nest too early for this test")
	}
}

func TestSameTickTrailVisibility(t *testing.T) {
	layout := func(t *testing.T, depositorFirst bool) (*Simulation, int) {
		s := newTestSim(t, emptyConfig())
		depositor := func() {
			i := placeAnt(s, geom.Vec{X: 200, Y: 200}, 0, Worker)
			s.ants[i].State = ReturningToNest
		}
		if depositorFirst {
			depositor()
		}
		seeker := placeAnt(s, geom.Vec{X: 230, Y: 200}, 90, Worker)
		if !depositorFirst {
			depositor()
		}
		return s, seeker
	}

	s, seeker := layout(t, true)
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if got := s.ants[seeker].Heading; got != 95 {
		t.Fatalf("later ant heading %v, want 95 (steering to fresh marker)", got)
	}

	s, seeker = layout(t, false)
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if got := s.ants[seeker].Heading; got == 95 {
		t.Fatal("earlier ant sensed a marker deposited after it acted")
	}
}

func TestTwoWorkersShareLastChunk(t *testing.T) {
	conf := emptyConfig()
	conf.Nest = geom.Rect{X: 700, Y: 500, Width: 40, Height: 40}
	s := newTestSim(t, conf)
	pile := s.food.Add(geom.Vec{X: 300, Y: 300}, 1)
	first := placeAnt(s, geom.Vec{X: 300, Y: 300}, 0, Worker)
	second := placeAnt(s, geom.Vec{X: 301, Y: 300}, 0, Worker)

	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if pile.Amount != 0 || s.food.Len() != 0 {
		t.Fatalf("pile amount %d, %d piles left; want emptied and removed", pile.Amount, s.food.Len())
	}
	if s.ants[first].State != ReturningToNest {
		t.Fatalf("first worker state %v, want ReturningToNest", s.ants[first].State)
	}
	if s.ants[second].State != SeekingFood || s.ants[second].Carrying() {
		t.Fatalf("second worker state %v, want SeekingFood with nothing carried", s.ants[second].State)
	}
	if s.stats.Collected != 1 {
		t.Fatalf("Collected = %d, want 1", s.stats.Collected)
	}
}
