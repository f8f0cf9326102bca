package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mudaeroll/cmd/mudaeroll/commands"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := commands.Execute(); err != nil {
		log.Error().Err(err).Msg("mudaeroll failed")
		os.Exit(1)
	}
}
