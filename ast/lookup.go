// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// NodeAtOffset returns the deepest node in the tree rooted at root whose
// span contains offset. If includeRightBound is true, a node whose span
// ends exactly at offset also counts as containing it. It returns nil if no
// node (including root) contains the offset.
func NodeAtOffset(root Node, offset int, includeRightBound bool) Node {
	if root == nil {
		return nil
	}
	if !spanContains(root, offset, includeRightBound) {
		return nil
	}
	return descend(root, offset, includeRightBound)
}

func spanContains(n Node, offset int, includeRightBound bool) bool {
	if offset < n.Offset() {
		return false
	}
	end := n.Offset() + n.Length()
	if includeRightBound {
		return offset <= end
	}
	return offset < end
}

// descend assumes n's span already contains offset and walks down to the
// deepest such descendant.
func descend(n Node, offset int, includeRightBound bool) Node {
	children := childrenOf(n)
	for _, c := range children {
		if c.Offset() > offset {
			// Children are in source order; once a child starts past the
			// offset, no later child (or this one) can contain it.
			break
		}
		if spanContains(c, offset, includeRightBound) {
			return descend(c, offset, includeRightBound)
		}
	}
	return n
}

func childrenOf(n Node) []Node {
	switch v := n.(type) {
	case *Array:
		return v.Items
	case *Object:
		out := make([]Node, len(v.Properties))
		for i, p := range v.Properties {
			out[i] = p
		}
		return out
	case *Property:
		out := []Node{v.KeyNode}
		if v.ValueNode != nil {
			out = append(out, v.ValueNode)
		}
		return out
	default:
		return nil
	}
}

// Visit performs a pre-order traversal of the tree rooted at root, calling
// fn for every node. If fn returns false, Visit does not descend into that
// node's children (but continues with siblings of ancestors).
func Visit(root Node, fn func(Node) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, c := range childrenOf(root) {
		Visit(c, fn)
	}
}
