// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestData(t *testing.T) {
	var md Data
	assert.True(t, md.Set("stroke_width", 2.0))
	assert.False(t, md.Set("stroke_width", 2.0))
	assert.True(t, md.Set("colors", []string{"red"}))
	assert.False(t, md.Set("colors", []string{"red"}))
	assert.True(t, md.Set("colors", []string{"red", "blue"}))

	sw, err := Get[float64](md, "stroke_width")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, sw)

	_, err = Get[string](md, "stroke_width")
	assert.Error(t, err)
	_, err = Get[string](md, "missing")
	assert.Error(t, err)

	assert.Equal(t, "none", GetOr(md, "labels_visibility", "none"))
	assert.True(t, md.Has("colors"))
	assert.Equal(t, []string{"colors", "stroke_width"}, md.Keys())

	var cp Data
	cp.Copy(md)
	cp.Set("stroke_width", 3.0)
	assert.Equal(t, 2.0, GetOr(md, "stroke_width", 0.0))
}
