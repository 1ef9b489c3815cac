// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"math"
)

// convert converts values for the standard attributes to their
// standard types, accepting the generic forms produced by
// decoding JSON, TOML and YAML. Other attributes are stored as is.
func convert(name string, v any) (any, error) {
	switch name {
	case Colors, Labels:
		return toStrings(v)
	case LabelsVisibility:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	case StrokeWidth:
		return toFloat(v)
	case Visible, DisplayLegend:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil
	case X, Y, Color, Width:
		return toFloats2D(v)
	}
	return v, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case nil:
		return math.NaN(), nil
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}

func toStrings(v any) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return x, nil
	case nil:
		return []string{}, nil
	case []any:
		ss := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, e)
			}
			ss[i] = s
		}
		return ss, nil
	}
	return nil, fmt.Errorf("expected list of strings, got %T", v)
}

func toFloats1D(v any) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return x, nil
	case []any:
		fs := make([]float64, len(x))
		for i, e := range x {
			f, err := toFloat(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			fs[i] = f
		}
		return fs, nil
	}
	return nil, fmt.Errorf("expected list of numbers, got %T", v)
}

// toFloats2D accepts a list of lists, or a single flat list
// which is taken as one row.
func toFloats2D(v any) ([][]float64, error) {
	switch x := v.(type) {
	case [][]float64:
		return x, nil
	case []float64:
		return [][]float64{x}, nil
	case nil:
		return [][]float64{}, nil
	case []any:
		if len(x) > 0 {
			if _, isList := x[0].([]any); !isList {
				row, err := toFloats1D(x)
				if err != nil {
					return nil, err
				}
				return [][]float64{row}, nil
			}
		}
		rows := make([][]float64, len(x))
		for i, e := range x {
			row, err := toFloats1D(e)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			rows[i] = row
		}
		return rows, nil
	}
	return nil, fmt.Errorf("expected list of lists of numbers, got %T", v)
}
