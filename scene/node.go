// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a retained SVG scene graph of nodes with
// attributes, keyed and positional data joins for reconciling the
// graph to new data, and a [Timeline] of timed attribute transitions.
package scene

import (
	"maps"
	"math"
	"slices"

	"cogentcore.org/marks/events"
)

// Node is one element of the scene graph, such as an svg "g",
// "line" or "text" element.
type Node struct {

	// Tag is the SVG element name.
	Tag string

	// Class is the class name used to select the node in joins.
	Class string

	// Key is the join key identifying the data the node is bound to.
	Key string

	// Text is the character data of text elements.
	Text string

	// Parent is the parent node, nil for the root and removed nodes.
	Parent *Node

	// Children are the child nodes in drawing order.
	Children []*Node

	// Datum is the data item the node is bound to, if any.
	Datum any

	attrs     map[string]any
	style     map[string]string
	listeners events.Listeners
	exiting   bool
	removed   bool
}

// New returns a new detached node with the given tag.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// PlanName returns the join key, for use with the plan package.
func (n *Node) PlanName() string {
	return n.Key
}

// Append adds a new child node with the given tag at the end
// and returns it.
func (n *Node) Append(tag string) *Node {
	c := New(tag)
	c.Parent = n
	n.Children = append(n.Children, c)
	return c
}

// Remove detaches the node from its parent.
func (n *Node) Remove() {
	n.removed = true
	if n.Parent == nil {
		return
	}
	p := n.Parent
	if i := slices.Index(p.Children, n); i >= 0 {
		p.Children = slices.Delete(p.Children, i, i+1)
	}
	n.Parent = nil
}

// IsRemoved returns whether [Node.Remove] has been called.
func (n *Node) IsRemoved() bool {
	return n.removed
}

// IsExiting returns whether the node is running an exit transition,
// after which it will be removed. Exiting nodes are not selected.
func (n *Node) IsExiting() bool {
	return n.exiting
}

// SetClass sets the class and returns the node.
func (n *Node) SetClass(class string) *Node {
	n.Class = class
	return n
}

// SetText sets the text and returns the node.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// SetAttr sets the named attribute, which should be a float64 or
// a string, and returns the node.
func (n *Node) SetAttr(name string, value any) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[name] = value
	return n
}

// Attr returns the named attribute value, or nil.
func (n *Node) Attr(name string) any {
	return n.attrs[name]
}

// Float returns the named attribute as a number,
// or NaN if it is missing or not a number.
func (n *Node) Float(name string) float64 {
	if v, ok := n.attrs[name].(float64); ok {
		return v
	}
	return math.NaN()
}

// AttrString returns the named attribute as a string,
// or "" if it is missing or not a string.
func (n *Node) AttrString(name string) string {
	s, _ := n.attrs[name].(string)
	return s
}

// Attrs returns a copy of all attributes.
func (n *Node) Attrs() map[string]any {
	return maps.Clone(n.attrs)
}

// SetStyle sets the named style property and returns the node.
// An empty value removes the property.
func (n *Node) SetStyle(name, value string) *Node {
	if value == "" {
		delete(n.style, name)
		return n
	}
	if n.style == nil {
		n.style = make(map[string]string)
	}
	n.style[name] = value
	return n
}

// Style returns the named style property, or "".
func (n *Node) Style(name string) string {
	return n.style[name]
}

// IsDisplayed returns whether the node and all of its ancestors
// are displayed, which is not the case for a "display: none" style.
func (n *Node) IsDisplayed() bool {
	for p := n; p != nil; p = p.Parent {
		if p.style["display"] == "none" {
			return false
		}
	}
	return true
}

// SelectAll returns the children with the given class that are not exiting.
func (n *Node) SelectAll(class string) []*Node {
	var sel []*Node
	for _, c := range n.Children {
		if c.Class == class && !c.exiting {
			sel = append(sel, c)
		}
	}
	return sel
}

// FindAll returns all descendants with the given class that are not
// exiting, in depth-first order.
func (n *Node) FindAll(class string) []*Node {
	var sel []*Node
	n.Walk(func(c *Node) bool {
		if c.exiting {
			return false
		}
		if c != n && c.Class == class {
			sel = append(sel, c)
		}
		return true
	})
	return sel
}

// Walk calls fun on the node and its descendants in depth-first order,
// not descending into the children of a node for which fun returns false.
func (n *Node) Walk(fun func(c *Node) bool) {
	if !fun(n) {
		return
	}
	for _, c := range slices.Clone(n.Children) {
		c.Walk(fun)
	}
}

// On adds a listener for the given event type.
func (n *Node) On(typ string, fun func(ev *events.Event)) *Node {
	n.listeners.Add(typ, fun)
	return n
}

// Dispatch sends the event to the node's listeners and then to its
// ancestors' listeners, until it is handled.
func (n *Node) Dispatch(ev *events.Event) {
	for p := n; p != nil && !ev.IsHandled(); p = p.Parent {
		p.listeners.Call(ev)
	}
}
