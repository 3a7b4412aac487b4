// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlbuilder turns a gopkg.in/yaml.v3 document into the ast
// package's node tree, the YAML front end for the document façade
// described by the ast and validate packages. It is plumbing exercising
// those packages end to end, not part of the validation core itself.
package yamlbuilder

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/internal/xerrors"
)

// Build parses text as YAML and returns the root ast.Node. The returned
// node's offsets are byte offsets into text, recovered from yaml.v3's
// line/column positions since the library itself only reports those.
//
// The literal "<<" merge-key property is left unexpanded: expansion is
// validateObject's job (see validate/objectval.go), not the builder's.
func Build(text string) (root ast.Node, err error) {
	defer xerrors.Wrapf(&err, "building YAML AST")

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	lines := newLineIndex(text)
	return buildNode(doc.Content[0], lines), nil
}

// lineIndex maps a 1-based (line, column) pair, as reported by yaml.v3, to
// a byte offset into the original source.
type lineIndex struct {
	text   string
	starts []int // starts[i] is the byte offset at which line i+1 begins
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{text: text, starts: starts}
}

// offset converts a 1-based line and a 1-based rune column into a byte
// offset, clamping out-of-range input to the nearest valid position.
func (idx *lineIndex) offset(line, column int) int {
	if line < 1 {
		line = 1
	}
	if line > len(idx.starts) {
		line = len(idx.starts)
	}
	lineStart := idx.starts[line-1]
	lineEnd := len(idx.text)
	if line < len(idx.starts) {
		lineEnd = idx.starts[line]
	}
	lineText := strings.TrimRight(idx.text[lineStart:lineEnd], "\r\n")

	if column < 1 {
		column = 1
	}
	runes := 0
	for byteOff := range lineText {
		if runes == column-1 {
			return lineStart + byteOff
		}
		runes++
	}
	return lineStart + len(lineText)
}

func buildNode(n *yaml.Node, lines *lineIndex) ast.Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return buildNode(n.Content[0], lines)
	case yaml.AliasNode:
		return buildNode(n.Alias, lines)
	case yaml.ScalarNode:
		return buildScalar(n, lines)
	case yaml.SequenceNode:
		items := make([]ast.Node, 0, len(n.Content))
		for _, c := range n.Content {
			if item := buildNode(c, lines); item != nil {
				items = append(items, item)
			}
		}
		offset := lines.offset(n.Line, n.Column)
		return ast.NewArray(offset, spanLength(offset, items...), items)
	case yaml.MappingNode:
		xerrors.Assert(len(n.Content)%2 == 0, "yaml.MappingNode.Content has odd length")
		props := make([]*ast.Property, 0, len(n.Content)/2)
		propNodes := make([]ast.Node, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			valNode := n.Content[i+1]
			key, ok := buildScalar(keyNode, lines).(*ast.String)
			if !ok {
				continue
			}
			value := buildNode(valNode, lines)
			colonOffset := key.Offset() + key.Length()
			propEnd := colonOffset
			if value != nil {
				propEnd = value.Offset() + value.Length()
			}
			prop := ast.NewProperty(key.Offset(), propEnd-key.Offset(), key, value, colonOffset)
			props = append(props, prop)
			propNodes = append(propNodes, prop)
		}
		offset := lines.offset(n.Line, n.Column)
		return ast.NewObject(offset, spanLength(offset, propNodes...), props)
	default:
		return nil
	}
}

// spanLength returns a length, measured from offset, that covers every
// child's own span. yaml.v3 reports no end position for a collection node,
// so this is a lower bound (it does not include a trailing closing
// bracket/brace) -- sufficient for NodeAtOffset and Visit, which only need
// a node's span to contain its descendants, not to match the source
// exactly.
func spanLength(offset int, children ...ast.Node) int {
	end := offset + 1
	for _, c := range children {
		if c == nil {
			continue
		}
		if e := c.Offset() + c.Length(); e > end {
			end = e
		}
	}
	return end - offset
}

// buildScalar maps a yaml.v3 scalar's resolved tag onto an ast leaf. Only
// the tags a JSON-Schema-style document can sensibly carry are recognized;
// anything else (timestamps, binary, custom tags) is treated as a string,
// matching how a generic "tree-shaped document" validator has no business
// knowing about YAML-specific scalar kinds.
func buildScalar(n *yaml.Node, lines *lineIndex) ast.Node {
	offset := lines.offset(n.Line, n.Column)
	length := len(n.Value)
	switch n.Tag {
	case "!!null":
		return ast.NewNull(offset, length)
	case "!!bool":
		return ast.NewBoolean(offset, length, n.Value == "true")
	case "!!int", "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return ast.NewNumber(offset, length, f, n.Tag == "!!int")
		}
		return ast.NewString(offset, length, n.Value)
	default:
		return ast.NewString(offset, length, n.Value)
	}
}
