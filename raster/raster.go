// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster renders a scene graph to an RGBA image,
// supporting the subset of SVG used by plot marks: groups with
// translate transforms and opacity, lines, rects and text.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"strings"
	"sync"

	"cogentcore.org/marks/base/errors"
	"cogentcore.org/marks/colors"
	"cogentcore.org/marks/scene"
	"github.com/chewxy/math32"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// FontSize is the size in pixels of rendered text.
var FontSize = 12.0

var (
	faceOnce sync.Once
	face     font.Face
)

// textFace returns the shared monospace text face, or nil if
// the embedded font cannot be loaded.
func textFace() font.Face {
	faceOnce.Do(func() {
		f, err := opentype.Parse(lmmono10regular.TTF)
		if errors.Log(err) != nil {
			return
		}
		face = errors.Log1(opentype.NewFace(f, &opentype.FaceOptions{Size: FontSize, DPI: 72, Hinting: font.HintingFull}))
	})
	return face
}

// Renderer draws scene nodes into an image.
type Renderer struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// New returns a new renderer for an image of the given size,
// filled with the given background color.
func New(size image.Point, background color.Color) *Renderer {
	img := image.NewRGBA(image.Rectangle{Max: size})
	if background != nil {
		draw.Draw(img, img.Bounds(), colors.Uniform(background), image.Point{}, draw.Src)
	}
	return &Renderer{img: img, ras: vector.NewRasterizer(size.X, size.Y)}
}

// Image returns the rendered image.
func (rs *Renderer) Image() *image.RGBA {
	return rs.img
}

// Render renders the node and its descendants on top of the current image.
func (rs *Renderer) Render(n *scene.Node) {
	rs.render(n, vec2{}, 1)
}

// Render renders the node into a new image of the given size
// with a white background.
func Render(n *scene.Node, size image.Point) *image.RGBA {
	rs := New(size, colors.White)
	rs.Render(n)
	return rs.Image()
}

// WritePNG renders the node at the given size and writes it as PNG.
func WritePNG(w io.Writer, n *scene.Node, size image.Point) error {
	if err := png.Encode(w, Render(n, size)); err != nil {
		return fmt.Errorf("raster.WritePNG: %w", err)
	}
	return nil
}

func (rs *Renderer) render(n *scene.Node, off vec2, opacity float32) {
	if n.Style("display") == "none" {
		return
	}
	if op := n.Float("opacity"); !math32.IsNaN(f32(op)) {
		opacity *= float32(op)
	}
	if opacity <= 0 {
		return
	}
	tx, ty := Translate(n.AttrString("transform"))
	off = off.Add(vec2{orZero(tx), orZero(ty)})
	switch n.Tag {
	case "line":
		rs.line(n, off, opacity)
	case "rect":
		rs.rect(n, off, opacity)
	case "text":
		rs.text(n, off, opacity)
	}
	for _, c := range n.Children {
		rs.render(c, off, opacity)
	}
}

// paint returns the uniform source image for the named paint
// property (style first, then attribute), or nil for no paint.
func paint(n *scene.Node, prop string, opacity float32) image.Image {
	s := n.Style(prop)
	if s == "" {
		s = n.AttrString(prop)
	}
	if s == "" {
		return nil
	}
	c, err := colors.FromString(s)
	if err != nil || c.A == 0 {
		return nil
	}
	return colors.Uniform(colors.ApplyOpacity(c, opacity))
}

func (rs *Renderer) line(n *scene.Node, off vec2, opacity float32) {
	src := paint(n, "stroke", opacity)
	if src == nil {
		return
	}
	p1 := vec2{X: f32(n.Float("x1")), Y: f32(n.Float("y1"))}.Add(off)
	p2 := vec2{X: f32(n.Float("x2")), Y: f32(n.Float("y2"))}.Add(off)
	w := f32(n.Float("stroke-width"))
	if sw := n.Style("stroke-width"); sw != "" {
		w = Length(sw, float32(FontSize))
	}
	if math32.IsNaN(w) || w <= 0 {
		w = 1
	}
	d := p2.Sub(p1)
	ln := math32.Hypot(d.X, d.Y)
	if ln == 0 || math32.IsNaN(ln) || math32.IsInf(ln, 0) {
		return
	}
	nrm := vec2{X: -d.Y / ln * w / 2, Y: d.X / ln * w / 2}
	rs.polygon(src, p1.Add(nrm), p2.Add(nrm), p2.Sub(nrm), p1.Sub(nrm))
}

func (rs *Renderer) rect(n *scene.Node, off vec2, opacity float32) {
	src := paint(n, "fill", opacity)
	if src == nil {
		return
	}
	x, y := f32(n.Float("x")), f32(n.Float("y"))
	x, y = orZero(x), orZero(y)
	w, h := f32(n.Float("width")), f32(n.Float("height"))
	if !(w > 0 && h > 0) {
		return
	}
	p := vec2{X: x, Y: y}.Add(off)
	rs.polygon(src, p, vec2{X: p.X + w, Y: p.Y},
		vec2{X: p.X + w, Y: p.Y + h}, vec2{X: p.X, Y: p.Y + h})
}

func (rs *Renderer) polygon(src image.Image, pts ...vec2) {
	b := rs.img.Bounds()
	rs.ras.Reset(b.Dx(), b.Dy())
	rs.ras.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		rs.ras.LineTo(p.X, p.Y)
	}
	rs.ras.ClosePath()
	rs.ras.Draw(rs.img, b, src, image.Point{})
}

func (rs *Renderer) text(n *scene.Node, off vec2, opacity float32) {
	if n.Text == "" {
		return
	}
	src := paint(n, "fill", opacity)
	if src == nil {
		src = colors.Uniform(colors.Black)
	}
	fc := textFace()
	if fc == nil {
		return
	}
	x, y := f32(n.Float("x")), f32(n.Float("y"))
	x, y = orZero(x), orZero(y)
	y += Length(n.AttrString("dy"), float32(FontSize))
	p := vec2{X: x, Y: y}.Add(off)
	dr := &font.Drawer{
		Dst:  rs.img,
		Src:  src,
		Face: fc,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(math32.Round(p.X * 64)), Y: fixed.Int26_6(math32.Round(p.Y * 64))},
	}
	dr.DrawString(n.Text)
}

// TextWidth returns the rendered width in pixels of the given text.
func TextWidth(s string) float32 {
	fc := textFace()
	if fc == nil {
		return float32(len(s)) * float32(FontSize) * 0.6
	}
	return float32(font.MeasureString(fc, s)) / 64
}

// Translate parses the offset of an SVG "translate(x, y)" transform,
// returning zero for anything else.
func Translate(tr string) (x, y float32) {
	tr = strings.TrimSpace(tr)
	if !strings.HasPrefix(tr, "translate(") || !strings.HasSuffix(tr, ")") {
		return 0, 0
	}
	args := strings.FieldsFunc(tr[len("translate("):len(tr)-1], func(r rune) bool { return r == ',' || r == ' ' })
	if len(args) > 0 {
		x = f32(errors.Ignore1(strconv.ParseFloat(args[0], 64)))
	}
	if len(args) > 1 {
		y = f32(errors.Ignore1(strconv.ParseFloat(args[1], 64)))
	}
	return x, y
}

// Length parses an SVG length in px (or unitless) or em units,
// relative to the given font size. It returns 0 for an empty
// or invalid length.
func Length(s string, fontSize float32) float32 {
	s = strings.TrimSpace(s)
	scale := float32(1)
	switch {
	case strings.HasSuffix(s, "em"):
		s, scale = strings.TrimSuffix(s, "em"), fontSize
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return float32(v) * scale
}

func orZero(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return v
}

func f32(v float64) float32 { return float32(v) }

// vec2 is a point or offset in image pixels.
type vec2 struct {
	X, Y float32
}

func (v vec2) Add(o vec2) vec2 { return vec2{v.X + o.X, v.Y + o.Y} }

func (v vec2) Sub(o vec2) vec2 { return vec2{v.X - o.X, v.Y - o.Y} }
