// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview provides a live preview server for a figure.
// Browsers connected over a WebSocket receive the figure SVG each
// time the scene settles, and can send attribute updates that are
// applied to the model on the figure's event loop.
package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"sync"

	"cogentcore.org/marks/base/errors"
	"cogentcore.org/marks/figure"
	"cogentcore.org/marks/loop"
	"cogentcore.org/marks/model"
	"cogentcore.org/marks/scene"
	"github.com/gorilla/websocket"
	"github.com/h2non/filetype"
)

// Message is an attribute update sent by a client.
type Message struct {

	// Attr is the name of the model attribute.
	Attr string `json:"attr"`

	// Value is the new attribute value.
	Value any `json:"value"`
}

// Server is a preview server for one figure and model.
type Server struct {
	fig  *figure.Figure
	mdl  *model.Model
	loop *loop.Loop

	upgrader websocket.Upgrader

	mu      sync.Mutex
	svg     []byte
	clients map[*client]struct{}
}

// client is one connected WebSocket client.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New returns a new server for the given figure and model, whose
// updates run on the given loop. It sets the loop's OnSettle, and
// must be called before the loop runs.
func New(fig *figure.Figure, m *model.Model, l *loop.Loop) *Server {
	s := &Server{fig: fig, mdl: m, loop: l, clients: map[*client]struct{}{}}
	s.svg = []byte(scene.SVGString(fig.Root))
	l.OnSettle = s.publish
	return s
}

// Handler returns the HTTP handler of the server: the preview page
// at "/", the WebSocket at "/ws", and the current figure at "/svg"
// and "/png".
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.servePage)
	mux.HandleFunc("GET /ws", s.serveWS)
	mux.HandleFunc("GET /svg", s.serveSVG)
	mux.HandleFunc("GET /png", s.servePNG)
	return mux
}

// SVG returns the last published figure SVG.
func (s *Server) SVG() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svg
}

// NumClients returns the number of connected clients.
func (s *Server) NumClients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// publish renders the figure SVG and sends it to all clients.
// It runs on the loop goroutine.
func (s *Server) publish() {
	svg := []byte(scene.SVGString(s.fig.Root))
	s.mu.Lock()
	defer s.mu.Unlock()
	if bytes.Equal(svg, s.svg) {
		return
	}
	s.svg = svg
	for c := range s.clients {
		select {
		case c.send <- svg:
		default:
			slog.Warn("preview client too slow, dropping frame", "remote", c.conn.RemoteAddr())
		}
	}
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

func (s *Server) serveSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(s.SVG())
}

func (s *Server) servePNG(w http.ResponseWriter, r *http.Request) {
	b, err := s.renderPNG(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	kind, err := filetype.Match(b)
	if errors.Log(err) == nil {
		w.Header().Set("Content-Type", kind.MIME.Value)
	}
	w.Write(b)
}

type pngResult struct {
	data []byte
	err  error
}

// renderPNG rasterizes the figure on the loop. The task owns its buffer
// and hands it back over a buffered channel.
func (s *Server) renderPNG(ctx context.Context) ([]byte, error) {
	res := make(chan pngResult, 1)
	if !s.loop.Post(func() {
		var b bytes.Buffer
		err := png.Encode(&b, s.fig.RenderImage())
		res <- pngResult{b.Bytes(), err}
	}) {
		return nil, context.Canceled
	}
	select {
	case r := <-res:
		return r.data, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 8)}
	s.mu.Lock()
	c.send <- s.svg
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	slog.Info("preview client connected", "remote", conn.RemoteAddr())

	ctx, cancel := context.WithCancel(r.Context())
	go s.writeLoop(ctx, c)
	s.readLoop(c)
	cancel()

	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	conn.Close()
	slog.Info("preview client disconnected", "remote", conn.RemoteAddr())
}

func (s *Server) writeLoop(ctx context.Context, c *client) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.send:
			if errors.Log(c.conn.WriteMessage(websocket.TextMessage, msg)) != nil {
				return
			}
		}
	}
}

// readLoop applies the attribute updates sent by the client
// until the connection is closed.
func (s *Server) readLoop(c *client) {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errors.Log(err)
			}
			return
		}
		var m Message
		if err := json.Unmarshal(msg, &m); err != nil || m.Attr == "" {
			slog.Warn("preview: invalid message", "msg", string(msg), "err", err)
			continue
		}
		if !s.loop.Post(func() { s.apply(m) }) {
			return
		}
	}
}

// apply sets the attribute on the model. Data attributes are picked
// up by the mark through its change listeners.
func (s *Server) apply(m Message) {
	if err := s.mdl.Set(m.Attr, m.Value); err != nil {
		slog.Warn("preview: cannot set attribute", "attr", m.Attr, "err", err)
		return
	}
	slog.Debug("preview: attribute set", "attr", m.Attr)
}

const page = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>flexline preview</title></head>
<body>
<div id="figure"></div>
<script>
const fig = document.getElementById("figure");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => { fig.innerHTML = ev.data; };
window.setAttr = (attr, value) => ws.send(JSON.stringify({attr, value}));
</script>
</body>
</html>
`
