package colony

import "github.com/olivierh59500/antcolony-go/internal/geom"

// Pheromone is a scent marker left by a returning worker.
type Pheromone struct {
	Pos      geom.Vec
	Strength int
}

// Alpha is the marker's fade value for drawing, its strength clamped to
// a byte.
func (p Pheromone) Alpha() uint8 {
	return uint8(max(0, min(255, p.Strength)))
}

// PheromoneField is the shared, decaying set of scent markers. Markers
// are kept in deposit order and never merged.
type PheromoneField struct {
	markers     []Pheromone
	maxStrength int
}

// NewPheromoneField returns an empty field whose deposits start at
// maxStrength and therefore live for maxStrength decay ticks.
func NewPheromoneField(maxStrength int) *PheromoneField {
	return &PheromoneField{maxStrength: maxStrength}
}

// Deposit adds a fresh marker at pos.
func (f *PheromoneField) Deposit(pos geom.Vec) {
	f.markers = append(f.markers, Pheromone{Pos: pos, Strength: f.maxStrength})
}

// DecayTick weakens every marker by one and drops the ones that are spent.
func (f *PheromoneField) DecayTick() {
	active := f.markers[:0]
	for _, m := range f.markers {
		m.Strength--
		if m.Strength > 0 {
			active = append(active, m)
		}
	}
	clear(f.markers[len(active):])
	f.markers = active
}

// FindNearby returns the position of the first marker, in deposit order,
// lying strictly within radius of pos. It is not the nearest one.
func (f *PheromoneField) FindNearby(pos geom.Vec, radius float64) (geom.Vec, bool) {
	for _, m := range f.markers {
		if m.Strength > 0 && geom.Distance(pos, m.Pos) < radius {
			return m.Pos, true
		}
	}
	return geom.Vec{}, false
}

// Len returns the number of live markers.
func (f *PheromoneField) Len() int { return len(f.markers) }

// Markers returns the live markers in deposit order. The slice must not
// be modified by the caller.
func (f *PheromoneField) Markers() []Pheromone { return f.markers }
