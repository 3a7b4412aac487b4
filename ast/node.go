// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast defines the tree-shaped document model that the validator
// walks. Nodes are produced by an external parser (see internal/yamlbuilder
// and internal/jsonbuilder for two concrete builders) and are immutable from
// this package's standpoint: nothing here mutates a tree after it is built.
package ast

// Node is the common interface implemented by every AST node variant.
// There are seven variants: Null, Boolean, Number, String, Array, Object,
// and Property.
type Node interface {
	// Offset is the zero-based byte offset of the node's span in the source.
	Offset() int
	// Length is the byte length of the node's span in the source.
	Length() int
	// Parent is the node's owning node, or nil at the root.
	Parent() Node

	setParent(Node)
}

// base is embedded in every concrete node type and implements the parts of
// Node that don't vary by variant.
type base struct {
	offset int
	length int
	parent Node
}

func (b *base) Offset() int     { return b.offset }
func (b *base) Length() int     { return b.length }
func (b *base) Parent() Node    { return b.parent }
func (b *base) setParent(p Node) { b.parent = p }

// contains reports whether the half-open span [offset, offset+length) of n
// contains the byte offset o.
func contains(n Node, o int) bool {
	return o >= n.Offset() && o < n.Offset()+n.Length()
}

// Null represents a JSON/YAML null literal.
type Null struct {
	base
}

// NewNull returns a Null node spanning [offset, offset+length).
func NewNull(offset, length int) *Null {
	return &Null{base{offset: offset, length: length}}
}

// Boolean represents a true/false literal.
type Boolean struct {
	base
	Value bool
}

// NewBoolean returns a Boolean node spanning [offset, offset+length).
func NewBoolean(offset, length int, value bool) *Boolean {
	return &Boolean{base{offset: offset, length: length}, value}
}

// Number represents a numeric literal. IsInteger reflects the source's
// lexical form (no fractional part or exponent), not whether Value happens
// to have a zero fractional part.
type Number struct {
	base
	Value     float64
	IsInteger bool
}

// NewNumber returns a Number node spanning [offset, offset+length).
func NewNumber(offset, length int, value float64, isInteger bool) *Number {
	return &Number{base{offset: offset, length: length}, value, isInteger}
}

// String represents a string literal, already decoded (escapes resolved).
type String struct {
	base
	Value string
}

// NewString returns a String node spanning [offset, offset+length).
func NewString(offset, length int, value string) *String {
	return &String{base{offset: offset, length: length}, value}
}

// Array represents an ordered sequence of items.
type Array struct {
	base
	Items []Node
}

// NewArray returns an Array node spanning [offset, offset+length) owning
// items. Items' parent pointers are set to the returned node.
func NewArray(offset, length int, items []Node) *Array {
	a := &Array{base: base{offset: offset, length: length}, Items: items}
	for _, it := range items {
		it.setParent(a)
	}
	return a
}

// Object represents an ordered sequence of properties. Order is
// source order; duplicate keys are preserved as distinct Property nodes
// (the validator, not this package, decides how duplicates are resolved).
type Object struct {
	base
	Properties []*Property
}

// NewObject returns an Object node spanning [offset, offset+length) owning
// properties. Properties' parent pointers are set to the returned node.
func NewObject(offset, length int, properties []*Property) *Object {
	o := &Object{base: base{offset: offset, length: length}, Properties: properties}
	for _, p := range properties {
		p.setParent(o)
	}
	return o
}

// Property is a single key/value pair of an Object. It appears only as a
// direct child of an Object.
type Property struct {
	base
	KeyNode     *String
	ValueNode   Node // may be nil for partial/incomplete input
	ColonOffset int  // -1 if the colon is missing (partial input)
}

// NewProperty returns a Property node spanning [offset, offset+length).
// The key and value's parent pointers are set to the returned node.
func NewProperty(offset, length int, key *String, value Node, colonOffset int) *Property {
	p := &Property{base: base{offset: offset, length: length}, KeyNode: key, ColonOffset: colonOffset}
	key.setParent(p)
	if value != nil {
		value.setParent(p)
		p.ValueNode = value
	}
	return p
}

// Key returns the property's key as a plain string, a convenience over
// KeyNode.Value.
func (p *Property) Key() string { return p.KeyNode.Value }
