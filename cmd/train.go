package cmd

import (
	"blackjack/experiments"
	"blackjack/experiments/metrics"
	"blackjack/learner"
	"blackjack/meta"
	"blackjack/utils"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func TrainCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an action-value table",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := learner.ValidateEpsilon(flags.Epsilon)
			if err != nil {
				return err
			}

			collector := metrics.NewCollector()
			if flags.Progress {
				printer := utils.NewProgressPrinter(os.Stdout, collector.Progress, meta.PROGRESS_INTERVAL_MS*time.Millisecond)
				printer.Start()
				defer printer.Stop()
			}

			// The learned table is not persisted
			_, metric, err := experiments.Train(flags.TrainerConfig(), collector)
			if err != nil {
				return err
			}

			log.Info().
				Int("episodes", metric.Episodes).
				Int("wins", metric.Wins).
				Int("draws", metric.Draws).
				Int("losses", metric.Losses).
				Dur("duration", metric.Duration).
				Msg("training complete")
			return nil
		},
	}

	return cmd
}
