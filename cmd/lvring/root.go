// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvring/config"
	"github.com/katalvlaran/lvring/logsink"
	"github.com/katalvlaran/lvring/ringlog"
	"github.com/katalvlaran/lvring/sequence"
)

// app carries what every subcommand shares: the filesystem, the output
// stream and the configuration loaded before the subcommand runs.
type app struct {
	fs      afero.Fs
	out     io.Writer
	cfgPath string
	cfg     *config.Config
}

func newRootCommand(fs afero.Fs, out io.Writer) *cobra.Command {
	a := &app{fs: fs, out: out}
	root := &cobra.Command{
		Use:           "lvring",
		Short:         "Bounded sequences and ring logs",
		Long:          "lvring walks directory trees and runs tasks, retaining its most recent log lines in a ring log.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFs(a.fs, a.cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			return nil
		},
	}
	root.SetOut(out)
	addPersistentFlags(root.PersistentFlags(), &a.cfgPath)
	root.AddCommand(a.walkCommand(), a.configCommand(), a.tasksCommand())

	return root
}

func addPersistentFlags(flags *pflag.FlagSet, cfgPath *string) {
	flags.StringVar(cfgPath, "config", "", "config file (YAML); LVRING_* variables override it")
	flags.String(config.FlagLogLevel, "", "log level, overriding log.level")
	flags.Int(config.FlagRingCapacity, 0, "ring log capacity in lines, overriding ringlog.capacity")
}

// newSink builds the ring log and its logger from the loaded configuration.
// With log.console set, events are mirrored to stderr in console format.
func (a *app) newSink(cmd *cobra.Command, name string) (*ringlog.RingLog, *logsink.Sink, error) {
	ring, err := ringlog.New(a.cfg.RingLog.Capacity, a.cfg.RingLog.LineSize)
	if err != nil {
		return nil, nil, err
	}
	level, err := a.cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	opts := []logsink.Option{logsink.WithLevel(level), logsink.WithField("cmd", name)}
	if a.cfg.Log.Console {
		opts = append(opts, logsink.WithConsole(cmd.ErrOrStderr()))
	}
	sink, err := logsink.New(ring, opts...)
	if err != nil {
		ring.Destroy()

		return nil, nil, err
	}

	return ring, sink, nil
}

// warnSink reports Sequence failures through log at warn level.
func warnSink(log zerolog.Logger) sequence.ErrorSink {
	return func(op string, err error) {
		log.Warn().Str("op", op).Err(err).Str("kind", sequence.KindOf(err).String()).Msg("sequence failure")
	}
}
