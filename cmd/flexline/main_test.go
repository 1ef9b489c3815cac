// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/marks/logx"
	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chart = `
width = 200
height = 150

[mark]
labels = ["a"]
display_legend = true
x = [[0.0, 1.0, 2.0]]
y = [[0.0, 2.0, 1.0]]
`

func writeChart(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRenderCommand(t *testing.T) {
	path := writeChart(t, chart)
	dir := filepath.Dir(path)

	for _, name := range []string{"out.svg", "out.png"} {
		out := filepath.Join(dir, name)
		cmd := newRootCmd()
		cmd.SetArgs([]string{"render", "-q", "-c", path, "-o", out})
		require.NoError(t, cmd.Execute(), name)
		b, err := os.ReadFile(out)
		require.NoError(t, err)
		if name == "out.png" {
			kind, err := filetype.Match(b)
			require.NoError(t, err)
			assert.Equal(t, "png", kind.Extension)
		} else {
			assert.Contains(t, string(b), `class="line-elem"`)
		}
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "-q", "-c", path, "-o", filepath.Join(dir, "out.gif")})
	assert.Error(t, cmd.Execute())
}

func TestWatchFile(t *testing.T) {
	path := writeChart(t, chart)
	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() { changed <- struct{}{} })
	}()

	// the watcher may not be set up yet, so keep writing until it sees a change
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-changed:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte(chart+"\n"), 0o644))
		case <-deadline:
			t.Fatal("no change seen")
		}
	}
	cancel()
	assert.NoError(t, <-done)
}

func TestLogLevelFlags(t *testing.T) {
	defer func(lvl slog.Level) { logx.UserLevel = lvl }(logx.UserLevel)
	path := writeChart(t, chart)
	out := filepath.Join(filepath.Dir(path), "out.svg")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "-v", "-c", path, "-o", out})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)

	cmd = newRootCmd()
	cmd.SetArgs([]string{"render", "-q", "-c", path, "-o", out})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, slog.LevelWarn, logx.UserLevel)
}
