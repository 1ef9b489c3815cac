// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cogentcore.org/marks/base/errors"
	"cogentcore.org/marks/base/websocket"
	"cogentcore.org/marks/config"
	"cogentcore.org/marks/loop"
	"cogentcore.org/marks/preview"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of a chart file",
		Long: `Serve a live preview of a chart file. Changes to the chart file
are applied to the running chart, and browsers showing the preview
page are updated when the chart settles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts.config, addr)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8080", "address to listen on")
	return cmd
}

func serve(ctx context.Context, chartPath, addr string) error {
	chartPath, err := homedir.Expand(chartPath)
	if err != nil {
		return err
	}
	c, err := config.Open(chartPath)
	if err != nil {
		return err
	}
	fig, fl, err := c.Build(ctx)
	if err != nil {
		return err
	}
	l := loop.New(fig.Timeline())
	s := preview.New(fig, fl.Model(), l)
	go l.Run(ctx)
	go func() {
		errors.Log(watchFile(ctx, chartPath, func() {
			nc, err := config.Open(chartPath)
			if errors.Log(err) != nil {
				return
			}
			l.Post(func() {
				fig.Resize(nc.Width, nc.Height)
				errors.Log(nc.Apply(fl.Model()))
			})
			slog.Info("chart file changed", "config", chartPath)
		}))
	}()

	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errors.Log(srv.Shutdown(sctx))
	}()
	slog.Info("serving preview", "url", "http://"+addr)
	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func newSetCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "set <attr> <value>",
		Short: "Set a model attribute of a chart being served",
		Long: `Set a model attribute of a chart being served. The value is
parsed as JSON if possible, and is otherwise taken as a string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setAttr(url, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&url, "url", "u", "ws://localhost:8080/ws", "preview server WebSocket url")
	return cmd
}

func setAttr(url, attr, value string) error {
	var v any
	if err := json.Unmarshal([]byte(value), &v); err != nil {
		v = value
	}
	ws, err := websocket.Connect(url)
	if err != nil {
		return err
	}
	if err := ws.SendJSON(preview.Message{Attr: attr, Value: v}); err != nil {
		return err
	}
	return ws.Close()
}
