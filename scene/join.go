// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/marks/base/plan"

// JoinKeyed reconciles the children of n with the given class to the
// given keys, matching existing nodes by [Node.Key]. Nodes for new keys
// are created with the given tag and passed to enter (if non-nil) along
// with their index. Nodes whose key is gone are passed to exit, which is
// responsible for removing them (possibly after a transition); if exit
// is nil they are removed immediately. It returns the joined nodes in
// key order, which is also their order among the children.
func (n *Node) JoinKeyed(tag, class string, keys []string, enter func(c *Node, i int), exit func(c *Node)) []*Node {
	sel := n.SelectAll(class)
	plan.Update(&sel, len(keys), func(i int) string { return keys[i] },
		func(key string, i int) *Node {
			c := &Node{Tag: tag, Class: class, Key: key, Parent: n}
			if enter != nil {
				enter(c, i)
			}
			return c
		}, exitFunc(exit))
	n.restack(class, sel)
	return sel
}

// JoinIndexed reconciles the children of n with the given class to a
// list of count data items, matching existing nodes by position only.
// Surplus nodes are passed to exit (or removed if exit is nil) starting
// from the last, and missing nodes are created with the given tag and
// passed to enter.
func (n *Node) JoinIndexed(tag, class string, count int, enter func(c *Node, i int), exit func(c *Node)) []*Node {
	sel := n.SelectAll(class)
	plan.UpdateIndexed(&sel, count,
		func(i int) *Node {
			c := &Node{Tag: tag, Class: class, Parent: n}
			if enter != nil {
				enter(c, i)
			}
			return c
		}, exitFunc(exit))
	n.restack(class, sel)
	return sel
}

func exitFunc(exit func(c *Node)) func(c *Node) {
	if exit != nil {
		return exit
	}
	return (*Node).Remove
}

// restack sets the children to the remaining other children
// (including exiting ones) followed by the joined nodes.
func (n *Node) restack(class string, sel []*Node) {
	kids := make([]*Node, 0, len(n.Children)+len(sel))
	for _, c := range n.Children {
		if c.removed || (c.Class == class && !c.exiting) {
			continue
		}
		kids = append(kids, c)
	}
	n.Children = append(kids, sel...)
}
