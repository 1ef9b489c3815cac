// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/marks/config"
	"cogentcore.org/marks/figure"
	"cogentcore.org/marks/raster"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart file to an SVG or PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.Context(), opts.config, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "chart.svg", "output file (.svg or .png)")
	return cmd
}

// render builds the chart in the given chart file and writes it,
// with all transitions finished, to the output file.
func render(ctx context.Context, chartPath, output string) error {
	chartPath, err := homedir.Expand(chartPath)
	if err != nil {
		return err
	}
	output, err = homedir.Expand(output)
	if err != nil {
		return err
	}
	c, err := config.Open(chartPath)
	if err != nil {
		return err
	}
	fig, _, err := c.Build(ctx)
	if err != nil {
		return err
	}
	fig.Settle()
	if err := writeFigure(fig, output); err != nil {
		return err
	}
	slog.Info("rendered chart", "config", chartPath, "output", output)
	return nil
}

// writeFigure writes the figure to the given file, as PNG
// or SVG according to the extension.
func writeFigure(fig *figure.Figure, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("unsupported output extension %q", ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if ext == ".png" {
		err = raster.WritePNG(f, fig.Root, image.Pt(fig.Width, fig.Height))
	} else {
		err = fig.WriteSVG(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
