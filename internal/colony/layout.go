package colony

import (
	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// Perlin generator parameters for the clustered food layout.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinOct   = 3
)

func (s *Simulation) spawnFood() error {
	switch s.conf.FoodLayout {
	case LayoutUniform:
		for i := 0; i < s.conf.FoodPiles; i++ {
			s.food.Add(s.randomFoodPos(), s.conf.FoodPerPile)
		}
	case LayoutPerlin:
		noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOct, s.seed)
		for i := 0; i < s.conf.FoodPiles; i++ {
			s.food.Add(s.perlinFoodPos(noise), s.conf.FoodPerPile)
		}
	default:
		return invalid("unknown food_layout %q", s.conf.FoodLayout)
	}
	return nil
}

// randomFoodPos picks integer coordinates at least FoodMargin away from
// every border.
func (s *Simulation) randomFoodPos() geom.Vec {
	m := s.conf.FoodMargin
	w := int(s.arena.Width) - 2*m
	h := int(s.arena.Height) - 2*m
	return geom.Vec{
		X: float64(m + s.rng.Intn(w+1)),
		Y: float64(m + s.rng.Intn(h+1)),
	}
}

// perlinFoodPos rejection-samples candidates so piles gather where the
// noise field is high. If no candidate is accepted within the attempt
// budget the best one seen is used.
func (s *Simulation) perlinFoodPos(noise *perlin.Perlin) geom.Vec {
	var best geom.Vec
	bestWeight := -1.0
	for i := 0; i < s.conf.PerlinAttempt; i++ {
		p := s.randomFoodPos()
		w := foodWeight(noise, p, s.conf.PerlinScale)
		if s.rng.Float64() < w {
			return p
		}
		if w > bestWeight {
			best, bestWeight = p, w
		}
	}
	return best
}

// foodWeight is the acceptance probability of a pile at p: the noise
// value mapped onto [0,1] and squared to sharpen the clusters.
func foodWeight(noise *perlin.Perlin, p geom.Vec, scale float64) float64 {
	n := noise.Noise2D(p.X*scale, p.Y*scale)
	w := min(1, max(0, (n+1)/2))
	return w * w
}
