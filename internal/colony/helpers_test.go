package colony

import (
	"testing"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// emptyConfig is the default arena with no ants, food or walls.
func emptyConfig() Config {
	conf := DefaultConfig()
	conf.TotalAnts = 0
	conf.FoodPiles = 0
	conf.Obstacles = nil
	return conf
}

// newTestSim builds an unpopulated simulation with a fixed seed.
func newTestSim(t *testing.T, conf Config) *Simulation {
	t.Helper()
	if err := conf.Validate(); err != nil {
		t.Fatalf("test config rejected: %v", err)
	}
	return newEmpty(conf, 1)
}

// placeAnt appends an ant and returns its index in update order.
func placeAnt(s *Simulation, pos geom.Vec, heading float64, role Role) int {
	s.ants = append(s.ants, newAnt(len(s.ants), pos, heading, role, &s.conf))
	return len(s.ants) - 1
}
