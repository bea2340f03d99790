// Package headless drives a colony without a window, logging progress
// at a fixed tick interval.
package headless

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/olivierh59500/antcolony-go/internal/colony"
)

// Options controls a headless run.
type Options struct {
	Ticks  int // steps to run; 0 runs until the context is done
	Report int // ticks between progress lines; 0 disables them
}

// Run steps sim until opts.Ticks is reached or ctx is done, in which case
// the simulation is stopped. It returns the final statistics.
func Run(ctx context.Context, sim *colony.Simulation, opts Options, logger *log.Logger) (colony.Stats, error) {
	stop := context.AfterFunc(ctx, sim.Stop)
	defer stop()

	for n := 0; opts.Ticks == 0 || n < opts.Ticks; n++ {
		if err := sim.Step(); err != nil {
			if errors.Is(err, colony.ErrStopped) {
				logger.Printf("stopped at tick %d", sim.Stats().Tick)
				return sim.Stats(), nil
			}
			return sim.Stats(), err
		}
		if opts.Report > 0 && sim.Stats().Tick%opts.Report == 0 {
			logger.Print(Summary(sim))
		}
	}
	return sim.Stats(), nil
}

// Summary formats one progress line for sim.
func Summary(sim *colony.Simulation) string {
	st := sim.Stats()
	carrying := 0
	for _, a := range sim.Ants() {
		if a.Carrying() {
			carrying++
		}
	}
	left := 0
	for _, f := range sim.Food().Piles() {
		left += f.Amount
	}
	return fmt.Sprintf("tick=%d piles=%d food=%d pheromones=%d collected=%d delivered=%d carrying=%d",
		st.Tick, sim.Food().Len(), left, sim.Pheromones().Len(), st.Collected, st.Delivered, carrying)
}
