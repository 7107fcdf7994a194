package experiments

import (
	"blackjack/experiments/metrics"
	"blackjack/game"
	"blackjack/learner"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// DefaultEpsilons are the exploration rates compared by the epsilon experiment.
var DefaultEpsilons = []float64{0.01, 0.05, 0.1, 0.2, 0.5}

// Train learns a fresh table with the given configuration. The engine and the
// policy share one source seeded from the configuration, so equal configurations
// learn equal tables.
func Train(config metrics.TrainerConfig, collector metrics.Collector) (*learner.Table, metrics.TrainingMetric, error) {
	mode, err := validate(config)
	if err != nil {
		return nil, metrics.TrainingMetric{}, err
	}

	source := rand.New(rand.NewSource(config.Seed))
	engine := game.NewStandardEngine(game.NewStandardRules(), source)
	mc := learner.NewMonteCarlo(engine,
		learner.WithEpisodes(config.Episodes),
		learner.WithEpsilon(config.Epsilon),
		learner.WithSource(source),
		learner.WithVisitMode(mode),
		learner.WithMetrics(collector),
	)

	table := learner.NewTable()
	metric, err := mc.Train(table)
	if err != nil {
		return nil, metric, err
	}
	return table, metric, nil
}

// RunEpsilonExperiment trains once per exploration rate and stores the outcome
// of every run under root. It returns the directory holding the records.
func RunEpsilonExperiment(root string, base metrics.TrainerConfig, epsilons []float64) (string, error) {
	const name = "epsilon"

	configs := make([]metrics.TrainerConfig, 0, len(epsilons))
	for i, epsilon := range epsilons {
		config := base
		config.ID = i + 1
		config.Epsilon = epsilon
		if _, err := validate(config); err != nil {
			return "", fmt.Errorf("invalid config %d: %w", config.ID, err)
		}
		configs = append(configs, config)
	}

	log.Info().Msgf("starting %s experiment...", name)

	records := make([]metrics.RunRecord, 0, len(configs))
	for i, config := range configs {
		log.Info().Msgf("starting run %d of %d with config=%+v...", i+1, len(configs), config)

		_, metric, err := Train(config, metrics.NewCollector())
		if err != nil {
			return "", fmt.Errorf("failed run %d: %w", config.ID, err)
		}
		records = append(records, metrics.RunRecord{
			ID:             uuid.New(),
			Config:         config.ID,
			TrainingMetric: metric,
		})

		log.Info().Msgf("completed run %d of %d with win rate %.4f", i+1, len(configs), metric.WinRate())
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteTrainerConfigs(configs)
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored trainer configs")

	err = writer.WriteRunRecords(records)
	if err != nil {
		return "", err
	}
	log.Info().Msg("stored run records")

	return writer.Dir(), nil
}

// validate checks a configuration before any training starts.
func validate(config metrics.TrainerConfig) (learner.VisitMode, error) {
	if config.Episodes <= 0 {
		return learner.FirstVisit, fmt.Errorf("episodes must be positive, got %d", config.Episodes)
	}
	err := learner.ValidateEpsilon(config.Epsilon)
	if err != nil {
		return learner.FirstVisit, err
	}
	return learner.ParseVisitMode(config.VisitMode)
}
