// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flexline renders flex line charts described by chart files,
// watches chart files for changes, and serves live previews.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/marks/logx"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	logx.SetDefault(os.Stderr)
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// options are the flags shared by all commands.
type options struct {
	config  string
	verbose bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "flexline",
		Short:         "Render flex line charts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case opts.verbose:
				logx.UserLevel = slog.LevelDebug
			case opts.quiet:
				logx.UserLevel = slog.LevelWarn
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "chart.toml", "chart file (.toml, .yaml, .yml or .json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "log only warnings and errors")
	root.AddCommand(newRenderCmd(opts), newWatchCmd(opts), newServeCmd(opts), newSetCmd())
	return root
}
