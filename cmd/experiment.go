package cmd

import (
	"blackjack/experiments"
	"blackjack/learner"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func ExperimentCommand(flags *Flags) *cobra.Command {
	var epsilons []float64

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Train once per exploration rate and record the outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, epsilon := range epsilons {
				err := learner.ValidateEpsilon(epsilon)
				if err != nil {
					return fmt.Errorf("invalid --epsilons: %w", err)
				}
			}

			dir, err := experiments.RunEpsilonExperiment(flags.SavePath, flags.TrainerConfig(), epsilons)
			if err != nil {
				return err
			}
			log.Info().Msgf("experiment records stored in %s", dir)
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&epsilons, "epsilons", experiments.DefaultEpsilons, "Exploration rates to compare")

	return cmd
}
