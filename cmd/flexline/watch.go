// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"

	"cogentcore.org/marks/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render a chart file again each time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			errors.Log(render(ctx, opts.config, output))
			return watchFile(ctx, opts.config, func() {
				errors.Log(render(ctx, opts.config, output))
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "chart.svg", "output file (.svg or .png)")
	return cmd
}

// watchFile calls changed each time the file at path is written or
// replaced, until the context is done. It watches the directory of
// the file, so that editors that replace files are handled.
func watchFile(ctx context.Context, path string, changed func()) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&fsnotify.Write == fsnotify.Write || ev.Op&fsnotify.Create == fsnotify.Create {
				changed()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
