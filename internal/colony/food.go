package colony

import (
	"math"
	"slices"

	"github.com/olivierh59500/antcolony-go/internal/geom"
)

// Food is a pile ants take chunks from.
type Food struct {
	ID     int
	Pos    geom.Vec
	Amount int
	size   float64
}

// Rect returns the collision box of the pile.
func (f *Food) Rect() geom.Rect { return geom.Box(f.Pos, f.size, f.size) }

// FoodSupply is the ordered population of food piles. Piles keep their
// insertion order; a pile leaves the supply the moment it is emptied.
type FoodSupply struct {
	piles  []*Food
	nextID int
	size   float64
}

// NewFoodSupply returns an empty supply whose piles have size-wide boxes.
func NewFoodSupply(size float64) *FoodSupply {
	return &FoodSupply{size: size}
}

// Add places a pile holding amount chunks at pos and returns it.
func (s *FoodSupply) Add(pos geom.Vec, amount int) *Food {
	f := &Food{ID: s.nextID, Pos: pos, Amount: amount, size: s.size}
	s.nextID++
	if amount > 0 {
		s.piles = append(s.piles, f)
	}
	return f
}

// Len returns the number of piles left.
func (s *FoodSupply) Len() int { return len(s.piles) }

// Piles returns the live piles in insertion order. The slice must not be
// modified by the caller.
func (s *FoodSupply) Piles() []*Food { return s.piles }

// Get returns the pile with the given ID if it is still in the supply.
func (s *FoodSupply) Get(id int) (*Food, bool) {
	for _, f := range s.piles {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// Nearest returns the pile closest to pos. Ties go to the earlier pile.
func (s *FoodSupply) Nearest(pos geom.Vec) (*Food, float64, bool) {
	var best *Food
	bestDist := math.Inf(1)
	for _, f := range s.piles {
		if d := geom.Distance(pos, f.Pos); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best, bestDist, best != nil
}

// Colliding returns the first pile, in supply order, whose box overlaps r.
func (s *FoodSupply) Colliding(r geom.Rect) (*Food, bool) {
	for _, f := range s.piles {
		if f.Rect().Overlaps(r) {
			return f, true
		}
	}
	return nil, false
}

// TakeChunk removes one unit from f and drops the pile from the supply
// when it runs out. It reports whether a chunk was actually taken; a pile
// that already left the supply yields nothing.
func (s *FoodSupply) TakeChunk(f *Food) bool {
	i := slices.Index(s.piles, f)
	if i < 0 || f.Amount <= 0 {
		return false
	}
	f.Amount--
	if f.Amount == 0 {
		s.piles = slices.Delete(s.piles, i, i+1)
	}
	return true
}

// Reap drops any pile whose amount reached zero. TakeChunk already does
// this eagerly; Reap keeps the supply consistent if a pile was edited
// directly.
func (s *FoodSupply) Reap() int {
	before := len(s.piles)
	s.piles = slices.DeleteFunc(s.piles, func(f *Food) bool { return f.Amount <= 0 })
	return before - len(s.piles)
}
