// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, generating minimal edits to
// modify the current slice contents to match the target.
// [Update] matches elements by unique name string identifiers,
// so that an element keeps its identity as long as its name is
// part of the target. [UpdateIndexed] matches elements by position
// only, for data that has no stable identity of its own.
package plan

import (
	"log/slog"
	"slices"
)

// Namer is an interface that types can implement to specify their name in a plan context.
type Namer interface {

	// PlanName returns the name of the object in a plan context.
	PlanName() string
}

// Update ensures that the elements of the slice contain
// the elements according to the plan, specified by unique
// element names, with n = total number of items in the target slice.
// If a new item is needed then new is called to create it,
// for given name at given index position.
// If destroy is not-nil, then it is called on any element
// that is being deleted from the slice.
// It returns whether any changes were made.
func Update[T Namer](s *[]T, n int, name func(i int) string, new func(name string, i int) T, destroy func(e T)) bool {
	mods := false
	// first make a map for looking up the indexes of the target names
	names := make([]string, n)
	nmap := make(map[string]int, n)
	for i := range n {
		nm := name(i)
		names[i] = nm
		if _, has := nmap[nm]; has {
			slog.Error("plan.Update: duplicate name", "name", nm)
		}
		nmap[nm] = i
	}
	// first remove anything we don't want
	r := *s
	for i := len(r) - 1; i >= 0; i-- {
		if _, ok := nmap[r[i].PlanName()]; !ok {
			mods = true
			if destroy != nil {
				destroy(r[i])
			}
			r = slices.Delete(r, i, i+1)
		}
	}
	// next add and move items as needed; in order so guaranteed
	for i, tn := range names {
		ci := slices.IndexFunc(r[min(i, len(r)):], func(e T) bool { return e.PlanName() == tn })
		if ci >= 0 {
			ci += min(i, len(r))
		}
		if ci < 0 { // item not currently on the list
			mods = true
			ne := new(tn, i)
			r = slices.Insert(r, i, ne)
		} else if ci != i { // on the list but in the wrong place
			mods = true
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, i, e)
		}
	}
	*s = r
	return mods
}

// UpdateIndexed ensures that the slice has exactly n elements,
// matching existing elements to target positions by index only.
// Elements beyond n are passed to destroy (if non-nil) and removed,
// and missing positions are filled by calling new with the index.
// It returns whether any changes were made.
func UpdateIndexed[T any](s *[]T, n int, new func(i int) T, destroy func(e T)) bool {
	r := *s
	if len(r) == n {
		return false
	}
	for i := len(r) - 1; i >= n; i-- {
		if destroy != nil {
			destroy(r[i])
		}
	}
	if len(r) > n {
		r = slices.Delete(r, n, len(r))
	}
	for i := len(r); i < n; i++ {
		r = append(r, new(i))
	}
	*s = r
	return true
}
