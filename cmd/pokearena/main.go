// Package main is the entry point for the pokearena battle simulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/pokearena/internal/battle"
	"github.com/samdwyer/pokearena/internal/config"
	"github.com/samdwyer/pokearena/internal/dex"
	"github.com/samdwyer/pokearena/internal/telemetry"
	"github.com/samdwyer/pokearena/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one at random)")
	battles := flag.Int("n", 1, "number of battles; >1 reports aggregate win rates")
	watch := flag.Bool("watch", false, "play the battle back in the terminal viewer")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <species> <species>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	first, second := flag.Arg(0), flag.Arg(1)

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.LoadArena(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	// An explicit -n beats the config file; otherwise the file decides.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			cfg.Battles = *battles
		}
	})

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Simulator will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	pokedex, err := dex.Load()
	if err != nil {
		log.Fatalf("Failed to load species data: %v", err)
	}

	if cfg.Battles > 1 {
		runBatch(ctx, pokedex, first, second, cfg)
		return
	}
	runSingle(ctx, pokedex, first, second, cfg, *watch)
}

// runSingle simulates one battle and prints (or plays back) its log.
func runSingle(ctx context.Context, pokedex *dex.Dex, first, second string, cfg config.Arena, watch bool) {
	sim := battle.NewSimulator(pokedex, battle.NewSeededRand(cfg.Seed))
	result, err := sim.RunNames(ctx, first, second)
	if err != nil {
		log.Fatalf("Battle failed: %v", err)
	}

	if watch {
		viewer, err := ui.NewViewer()
		if err != nil {
			log.Fatalf("Failed to open viewer: %v", err)
		}
		viewer.Play(result, matchupFor(pokedex, result, first, second))
		return
	}

	fmt.Printf("=== %s vs %s (seed %d) ===\n", first, second, cfg.Seed)
	for _, rec := range result.Turns {
		fmt.Printf("Turn %d:\n", rec.Turn)
		for _, action := range rec.Actions {
			fmt.Printf("  %s\n", action)
		}
	}
	fmt.Println(result.Summary)
}

// runBatch estimates win rates over repeated simulations.
func runBatch(ctx context.Context, pokedex *dex.Dex, first, second string, cfg config.Arena) {
	result, err := battle.RunBatch(ctx, pokedex, first, second, cfg.Battles, cfg.Seed)
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}

	fmt.Printf("=== %s vs %s (%d battles, seed %d) ===\n", first, second, result.Battles, cfg.Seed)
	fmt.Printf("%s wins: %d (%.1f%%)\n", first, result.FirstWins, 100*result.FirstWinRate())
	fmt.Printf("%s wins: %d (%.1f%%)\n", second, result.SecondWins,
		100*float64(result.SecondWins)/float64(result.Battles))
	fmt.Printf("draws: %d\n", result.Draws)
	fmt.Printf("average length: %.1f rounds\n", result.AverageRounds())
}

// matchupFor assembles the viewer's display data for a finished battle.
func matchupFor(pokedex *dex.Dex, result *battle.Result, first, second string) ui.Matchup {
	matchup := ui.Matchup{Names: [2]string{first, second}}
	for i, name := range matchup.Names {
		if def := pokedex.GetByID(name); def != nil {
			matchup.Colors[i] = def.TCellColor()
			matchup.MaxHP[i] = def.Stats.MaxHPAt(battle.BattleLevel)
		}
	}
	// First-turn HP snapshots catch anything the stats missed.
	if len(result.Turns) > 0 {
		for i := 0; i < 2; i++ {
			if matchup.MaxHP[i] < result.Turns[0].HP[i] {
				matchup.MaxHP[i] = result.Turns[0].HP[i]
			}
		}
	}
	return matchup
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_POKEARENA_API_KEY")
	dataset := os.Getenv("HONEYCOMB_POKEARENA_DATASET")
	if dataset == "" {
		dataset = "pokearena" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
