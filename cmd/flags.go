package cmd

import (
	"blackjack/experiments/metrics"
	"blackjack/meta"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envEpisodes = "BLACKJACK_EPISODES"
	envEpsilon  = "BLACKJACK_EPSILON"
	envSeed     = "BLACKJACK_SEED"
)

type Flags struct {
	TrainFlags
	SavePath string
	Progress bool
	Debug    bool
}

type TrainFlags struct {
	Episodes  int
	Epsilon   float64
	Seed      uint64
	VisitMode string
}

func DefaultFlags() *Flags {
	return &Flags{
		TrainFlags: TrainFlags{
			Episodes:  meta.EPISODES,
			Epsilon:   meta.EPSILON,
			Seed:      meta.SEED,
			VisitMode: "first",
		},
		SavePath: "results",
		Progress: false,
		Debug:    false,
	}
}

// LoadEnv overlays defaults with values from the environment, reading a .env
// file first when one exists.
func (f *Flags) LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	if v, ok := os.LookupEnv(envEpisodes); ok {
		episodes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envEpisodes, err)
		}
		f.Episodes = episodes
	}
	if v, ok := os.LookupEnv(envEpsilon); ok {
		epsilon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envEpsilon, err)
		}
		f.Epsilon = epsilon
	}
	if v, ok := os.LookupEnv(envSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envSeed, err)
		}
		f.Seed = seed
	}
	return nil
}

func (f *Flags) TrainerConfig() metrics.TrainerConfig {
	return metrics.TrainerConfig{
		ID:        1,
		Episodes:  f.Episodes,
		Epsilon:   f.Epsilon,
		Seed:      f.Seed,
		VisitMode: f.VisitMode,
	}
}
