// SPDX-License-Identifier: MIT

// Command lvring walks directory trees and runs small maintenance tasks,
// keeping its own recent log lines in a fixed-size ring log.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.With().Str("app.id", "lvring").Logger()
	if err := newRootCommand(afero.NewOsFs(), os.Stdout).Execute(); err != nil {
		log.Fatal().Str("op", "Execute").Err(err).Msg("command failed")
	}
}
