package main

import (
	"blackjack/cmd"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	err := cmd.RootCommand().Execute()
	if err != nil {
		log.Error().Err(err).Msg("blackjack failed")
		os.Exit(1)
	}
}
