// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/lucasb-eyer/go-colorful"

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCL space,
// as a hex string. This is useful for assigning default series colors.
func Spaced(idx int) string {
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	toffs := []float64{0, -10, 0, 5, 0, 0, 5, 0}
	tones := []float64{55, 70, 40, 60, 75}
	chromas := []float64{0.7, 0.7, 0.7, 0.2, 0.2}
	ncats := len(hues)
	ntc := len(tones)
	hi := idx % ncats
	tci := (idx / ncats) % ntc
	tone := (toffs[hi] + tones[tci]) / 100
	return colorful.Hcl(hues[hi], chromas[tci], tone).Clamped().Hex()
}

// SpacedList returns the first n [Spaced] colors.
func SpacedList(n int) []string {
	cs := make([]string, n)
	for i := range cs {
		cs[i] = Spaced(i)
	}
	return cs
}
