package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/antcolony-go/internal/colony"
	"github.com/olivierh59500/antcolony-go/internal/headless"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (built-in defaults when empty)")
	seed := flag.Int64("seed", 0, "random seed; overrides the config when non-zero")
	noWindow := flag.Bool("headless", false, "run without a window and log statistics")
	ticks := flag.Int("ticks", 0, "headless: number of ticks to run (0 runs until interrupted)")
	report := flag.Int("report", 600, "headless: ticks between statistics lines (0 disables)")
	flag.Parse()

	log.SetFlags(log.LstdFlags)
	log.SetPrefix("antcolony: ")

	conf := colony.DefaultConfig()
	if *configPath != "" {
		var err error
		if conf, err = colony.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		conf.Seed = *seed
	}

	// Initialize simulation from the config
	sim, err := colony.New(conf)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("seed %d, %d ants, %d food piles", sim.Seed(), len(sim.Ants()), sim.Food().Len())

	if *noWindow {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		_, err := headless.Run(ctx, sim, headless.Options{Ticks: *ticks, Report: *report}, log.Default())
		stop()
		if err != nil {
			log.Fatal(err)
		}
		log.Print(headless.Summary(sim))
		return
	}

	// Set up Ebitengine game
	ebiten.SetWindowSize(int(conf.Width), int(conf.Height))
	ebiten.SetWindowTitle("Ant Colony Simulation")
	ebiten.SetTPS(60)

	// Run the game loop
	if err := ebiten.RunGame(NewGame(sim)); err != nil {
		log.Fatal(err)
	}
}
