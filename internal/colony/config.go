package colony

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid colony config")

// Food layouts understood by Config.FoodLayout.
const (
	LayoutUniform = "uniform"
	LayoutPerlin  = "perlin"
)

// Config holds the parameters fixed at startup for one simulation run.
type Config struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Seed   int64   `toml:"seed"` // 0 seeds from the clock

	// Ants
	TotalAnts   int     `toml:"total_ants"`
	WorkerRatio float64 `toml:"worker_ratio"` // probability that a new ant is a worker
	AntSpeed    float64 `toml:"ant_speed"`    // arena units per tick
	TurnRate    float64 `toml:"turn_rate"`    // degrees per tick
	AntSize     float64 `toml:"ant_size"`
	SpawnJitter int     `toml:"spawn_jitter"` // max spawn offset from nest center

	// Sensing
	PheromoneRadius float64 `toml:"pheromone_radius"`
	FoodRadius      float64 `toml:"food_radius"`

	// Food
	FoodPiles     int     `toml:"food_piles"`
	FoodPerPile   int     `toml:"food_per_pile"`
	FoodSize      float64 `toml:"food_size"`
	FoodMargin    int     `toml:"food_margin"`
	FoodLayout    string  `toml:"food_layout"`
	PerlinScale   float64 `toml:"perlin_scale"`   // noise frequency per arena unit
	PerlinAttempt int     `toml:"perlin_attempt"` // rejection sampling budget per pile

	// Pheromones
	PheromoneStrength int     `toml:"pheromone_strength"` // lifetime in ticks
	DropInterval      int     `toml:"drop_interval"`      // ticks between deposits
	PheromoneSize     float64 `toml:"pheromone_size"`

	// Static layout; a zero Nest is centered in the arena with NestSize sides.
	NestSize  float64     `toml:"nest_size"`
	Nest      geom.Rect   `toml:"nest"`
	Obstacles []geom.Rect `toml:"obstacles"`
}

// DefaultConfig returns the reference colony: an 800x600 arena with four
// walls around a central nest.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		TotalAnts:   40,
		WorkerRatio: 0.8,
		AntSpeed:    1.5,
		TurnRate:    5,
		AntSize:     5,
		SpawnJitter: 10,

		PheromoneRadius: 50,
		FoodRadius:      100,

		FoodPiles:     12,
		FoodPerPile:   80,
		FoodSize:      12,
		FoodMargin:    20,
		FoodLayout:    LayoutUniform,
		PerlinScale:   0.01,
		PerlinAttempt: 50,

		PheromoneStrength: 255,
		DropInterval:      10,
		PheromoneSize:     3,

		NestSize: 40,
		Obstacles: []geom.Rect{
			{X: 100, Y: 150, Width: 20, Height: 300},
			{X: 600, Y: 150, Width: 20, Height: 300},
			{X: 300, Y: 100, Width: 200, Height: 20},
			{X: 300, Y: 480, Width: 200, Height: 20},
		},
	}
}

// LoadConfig decodes the TOML file at path on top of DefaultConfig and
// validates the result.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return conf, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return conf, err
	}
	return conf, nil
}

// NestRect returns the nest rectangle, centering a NestSize square when
// no explicit nest was configured.
func (c Config) NestRect() geom.Rect {
	if !c.Nest.Empty() {
		return c.Nest
	}
	return geom.Box(geom.Vec{X: float64(int(c.Width) / 2), Y: float64(int(c.Height) / 2)}, c.NestSize, c.NestSize)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate rejects parameter sets that would leave the simulation
// undefined.
func (c Config) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return invalid("arena size %vx%v must be positive", c.Width, c.Height)
	case c.TotalAnts < 0:
		return invalid("total_ants %d is negative", c.TotalAnts)
	case math.IsNaN(c.WorkerRatio) || c.WorkerRatio < 0 || c.WorkerRatio > 1:
		return invalid("worker_ratio %v outside [0,1]", c.WorkerRatio)
	case c.AntSpeed < 0:
		return invalid("ant_speed %v is negative", c.AntSpeed)
	case c.TurnRate < 0:
		return invalid("turn_rate %v is negative", c.TurnRate)
	case c.AntSize <= 0 || c.FoodSize <= 0 || c.PheromoneSize <= 0:
		return invalid("entity sizes must be positive")
	case c.SpawnJitter < 0:
		return invalid("spawn_jitter %d is negative", c.SpawnJitter)
	case c.PheromoneRadius < 0 || c.FoodRadius < 0:
		return invalid("sensing radii must not be negative")
	case c.FoodPiles < 0:
		return invalid("food_piles %d is negative", c.FoodPiles)
	case c.FoodPerPile < 1:
		return invalid("food_per_pile %d must be at least 1", c.FoodPerPile)
	case c.FoodMargin < 0 || float64(2*c.FoodMargin) > c.Width || float64(2*c.FoodMargin) > c.Height:
		return invalid("food_margin %d does not fit the arena", c.FoodMargin)
	case c.FoodLayout != LayoutUniform && c.FoodLayout != LayoutPerlin:
		return invalid("unknown food_layout %q", c.FoodLayout)
	case c.FoodLayout == LayoutPerlin && (c.PerlinScale <= 0 || c.PerlinAttempt < 1):
		return invalid("perlin layout needs a positive scale and attempt budget")
	case c.PheromoneStrength < 1:
		return invalid("pheromone_strength %d must be at least 1", c.PheromoneStrength)
	case c.DropInterval < 0:
		return invalid("drop_interval %d is negative", c.DropInterval)
	}

	nest := c.NestRect()
	if nest.Empty() {
		return invalid("nest has no area")
	}
	arena := geom.Rect{Width: c.Width, Height: c.Height}
	if !arena.Contains(geom.Vec{X: nest.X, Y: nest.Y}) || !arena.Contains(geom.Vec{X: nest.X + nest.Width, Y: nest.Y + nest.Height}) {
		return invalid("nest %+v lies outside the arena", nest)
	}
	for i, o := range c.Obstacles {
		if o.Empty() {
			return invalid("obstacle %d has no area", i)
		}
		if o.Overlaps(nest) {
			return invalid("obstacle %d %+v overlaps the nest", i, o)
		}
	}
	return nil
}

// checkFinite rejects NaN and infinite parameters, which slip through
// every ordered comparison in Validate.
func (c Config) checkFinite() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"worker_ratio", c.WorkerRatio},
		{"ant_speed", c.AntSpeed},
		{"turn_rate", c.TurnRate},
		{"ant_size", c.AntSize},
		{"pheromone_radius", c.PheromoneRadius},
		{"food_radius", c.FoodRadius},
		{"food_size", c.FoodSize},
		{"perlin_scale", c.PerlinScale},
		{"pheromone_size", c.PheromoneSize},
		{"nest_size", c.NestSize},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s is %v", f.name, f.v)
		}
	}
	if !finiteRect(c.Nest) {
		return invalid("nest %+v is not finite", c.Nest)
	}
	for i, o := range c.Obstacles {
		if !finiteRect(o) {
			return invalid("obstacle %d %+v is not finite", i, o)
		}
	}
	return nil
}

func finiteRect(r geom.Rect) bool {
	for _, v := range [...]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
