// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Linear is a continuous linear [Scale].
type Linear struct {
	Base
}

// NewLinear returns a new linear scale with domain and range [0, 1].
func NewLinear() *Linear {
	ls := &Linear{}
	ls.this = ls
	ls.domain = [2]float64{0, 1}
	ls.rng = [2]float64{0, 1}
	return ls
}

func (ls *Linear) Map(v float64) float64 {
	t := normalize(v, ls.domain[0], ls.domain[1])
	return ls.rng[0] + t*(ls.rng[1]-ls.rng[0])
}

// Log is a continuous base-10 logarithmic [Scale].
// Its domain must be strictly positive.
type Log struct {
	Base
}

// NewLog returns a new log scale with domain [1, 10] and range [0, 1].
func NewLog() *Log {
	ls := &Log{}
	ls.this = ls
	ls.domain = [2]float64{1, 10}
	ls.rng = [2]float64{0, 1}
	return ls
}

func (ls *Log) Map(v float64) float64 {
	t := normalize(math.Log10(v), math.Log10(ls.domain[0]), math.Log10(ls.domain[1]))
	return ls.rng[0] + t*(ls.rng[1]-ls.rng[0])
}

func (ls *Log) UpdateDomain(lo, hi float64) {
	if lo <= 0 && ls.Min == nil {
		return
	}
	ls.Base.UpdateDomain(lo, hi)
}

// Identity is a [Scale] whose Map returns its input unchanged.
// Its range can be set but has no effect on the mapping.
type Identity struct {
	Base
}

// NewIdentity returns a new identity scale.
func NewIdentity() *Identity {
	is := &Identity{}
	is.this = is
	return is
}

func (is *Identity) Map(v float64) float64 { return v }
