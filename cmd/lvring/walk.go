// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvring/dirwalk"
	"github.com/katalvlaran/lvring/sequence"
)

func (a *app) walkCommand() *cobra.Command {
	var (
		maxDepth     int
		breadthFirst bool
		include      []string
	)
	cmd := &cobra.Command{
		Use:   "walk <dir>",
		Short: "Walk a directory tree and print the retained log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keep, err := dirwalk.NameFilter(include...)
			if err != nil {
				return err
			}
			ring, sink, err := a.newSink(cmd, "walk")
			if err != nil {
				return err
			}
			defer ring.Destroy()
			log := sink.Logger()
			order := dirwalk.DepthFirst
			if breadthFirst {
				order = dirwalk.BreadthFirst
			}

			// 1. Walk, logging every visited entry into the ring.
			res, err := dirwalk.Walk(a.fs, args[0],
				dirwalk.WithContext(cmd.Context()),
				dirwalk.WithMaxDepth(maxDepth),
				dirwalk.WithOrder(order),
				dirwalk.WithFilter(keep),
				dirwalk.WithStackOptions(a.cfg.SequenceOptions(sequence.WithErrorSink(warnSink(log)))...),
				dirwalk.WithOnVisit(func(e dirwalk.Entry) error {
					log.Info().
						Str("path", e.Path).
						Int("depth", e.Depth).
						Bool("dir", e.Dir).
						Int64("size", e.Size).
						Msg("visit")

					return nil
				}),
			)
			if err != nil {
				return err
			}
			log.Info().
				Str("root", args[0]).
				Int("dirs", res.Dirs).
				Int("files", res.Files).
				Int("skipped", res.Skipped).
				Int("max_stack", res.MaxStack).
				Str("order", order.String()).
				Msg("walk done")

			// 2. Print the ordered snapshot, oldest line first.
			if err = sink.Dump(a.out); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "kept %d of %d log lines\n", sink.Len(), ring.Total())

			return err
		},
	}
	cmd.Flags().BoolVar(&breadthFirst, "breadth-first", false, "visit level by level instead of depth first")
	cmd.Flags().StringSliceVar(&include, "include", nil, "glob patterns for file names to visit (directories are always visited)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "stop descending below this depth (-1 for no limit)")

	return cmd
}
