package colony

import (
	"slices"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// Arena is the fixed world: its bounds, the walls and the nest. It is
// built once per run and never changes.
type Arena struct {
	Width, Height float64
	Nest          geom.Rect
	Obstacles     []geom.Rect
}

// NewArena builds the arena described by conf.
func NewArena(conf Config) Arena {
	return Arena{
		Width:     conf.Width,
		Height:    conf.Height,
		Nest:      conf.NestRect(),
		Obstacles: slices.Clone(conf.Obstacles),
	}
}

// Blocked reports whether r overlaps any obstacle.
func (a Arena) Blocked(r geom.Rect) bool {
	for _, o := range a.Obstacles {
		if o.Overlaps(r) {
			return true
		}
	}
	return false
}

// outX and outY report a coordinate on or past the arena border.
func (a Arena) outX(x float64) bool { return x <= 0 || x >= a.Width }
func (a Arena) outY(y float64) bool { return y <= 0 || y >= a.Height }
