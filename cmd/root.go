package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	flags := DefaultFlags()
	envErr := flags.LoadEnv()

	cmd := &cobra.Command{
		Use:           "blackjack",
		Short:         "Learn to play blackjack with Monte Carlo control",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			setupLogging(flags.Debug)
			if flags.Episodes <= 0 {
				return fmt.Errorf("episodes must be positive, got %d", flags.Episodes)
			}
			return nil
		},
	}
	AddFlags(cmd, flags)

	cmd.AddCommand(
		TrainCommand(flags),
		ExperimentCommand(flags),
	)

	return cmd
}

func AddFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().IntVar(&flags.Episodes, "episodes", flags.Episodes, "Number of training episodes")
	cmd.PersistentFlags().Float64Var(&flags.Epsilon, "epsilon", flags.Epsilon, "Exploration rate")
	cmd.PersistentFlags().Uint64Var(&flags.Seed, "seed", flags.Seed, "Seed of the random source")
	cmd.PersistentFlags().StringVar(&flags.VisitMode, "visit-mode", flags.VisitMode, "Credit recurring pairs on the first or every visit (first|every)")
	cmd.PersistentFlags().BoolVar(&flags.Progress, "progress", flags.Progress, "Show live training progress")
	cmd.PersistentFlags().StringVar(&flags.SavePath, "save-path", flags.SavePath, "Path to save experiment records")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", flags.Debug, "Log every episode")
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
