// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvring/dirwalk"
	"github.com/katalvlaran/lvring/tasks"
)

const (
	walkInterval = time.Minute
	dumpInterval = 10 * time.Second
)

func (a *app) tasksCommand() *cobra.Command {
	var (
		run      bool
		parallel bool
		root     string
	)
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the built-in tasks, optionally running each once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ring, sink, err := a.newSink(cmd, "tasks")
			if err != nil {
				return err
			}
			defer ring.Destroy()
			log := sink.Logger()

			reg := tasks.NewRegistry(
				tasks.WithLogger(log),
				tasks.WithSequenceOptions(a.cfg.SequenceOptions()...),
			)
			err = reg.Register("walk", walkInterval, func(ctx context.Context) error {
				res, err := dirwalk.Walk(a.fs, root, dirwalk.WithContext(ctx))
				if err != nil {
					return err
				}
				log.Info().Str("root", root).Int("dirs", res.Dirs).Int("files", res.Files).Msg("walked")

				return nil
			})
			if err != nil {
				return err
			}
			if err = reg.Register("dump", dumpInterval, func(context.Context) error { return sink.Dump(a.out) }); err != nil {
				return err
			}

			switch {
			case run && parallel:
				if err = reg.RunAll(cmd.Context()); err != nil {
					return err
				}
			case run:
				for _, name := range reg.Names() {
					if err = reg.Invoke(cmd.Context(), name); err != nil {
						return err
					}
				}
			}

			var t *tasks.Task
			for _, name := range reg.Names() {
				if t, err = reg.Lookup(name); err != nil {
					return err
				}
				if _, err = fmt.Fprintf(a.out, "%s\t%s\truns=%d\n", t.Name, t.Interval, t.Runs); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&run, "run", false, "invoke every task once before listing")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "with --run, invoke the tasks concurrently")
	cmd.Flags().StringVar(&root, "root", ".", "directory walked by the walk task")

	return cmd
}
