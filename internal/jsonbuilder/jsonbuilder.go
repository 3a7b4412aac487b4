// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonbuilder turns a JSON document into the ast package's node
// tree, the JSON front end for the document façade alongside
// internal/yamlbuilder's YAML one. It is plumbing exercising ast/validate
// end to end, not part of the validation core itself.
package jsonbuilder

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/internal/xerrors"
)

// Build parses text as JSON and returns the root ast.Node, with byte
// offsets recovered from json.Decoder.InputOffset as each token is read.
func Build(text []byte) (root ast.Node, err error) {
	defer xerrors.Wrapf(&err, "building JSON AST")

	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	b := &builder{dec: dec, text: text}
	node, err := b.value()
	if err != nil {
		return nil, err
	}
	return node, nil
}

type builder struct {
	dec  *json.Decoder
	text []byte
}

// value decodes the next JSON value, recursing for arrays and objects.
func (b *builder) value() (ast.Node, error) {
	startOffset := int(b.dec.InputOffset())
	startOffset = b.skipSpace(startOffset)

	tok, err := b.dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return b.array(startOffset)
		case '{':
			return b.object(startOffset)
		default:
			xerrors.Assert(false, fmt.Sprintf("json.Decoder opened a value with delimiter %q", t))
		}
	case nil:
		return ast.NewNull(startOffset, int(b.dec.InputOffset())-startOffset), nil
	case bool:
		return ast.NewBoolean(startOffset, int(b.dec.InputOffset())-startOffset, t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		isInt := !bytes.ContainsAny([]byte(t.String()), ".eE")
		return ast.NewNumber(startOffset, int(b.dec.InputOffset())-startOffset, f, isInt), nil
	case string:
		return ast.NewString(startOffset, int(b.dec.InputOffset())-startOffset, t), nil
	default:
		xerrors.Assert(false, fmt.Sprintf("json.Decoder produced an unexpected token %v", tok))
	}
	panic("unreachable")
}

func (b *builder) array(startOffset int) (ast.Node, error) {
	var items []ast.Node
	for b.dec.More() {
		item, err := b.value()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	closeTok, err := b.dec.Token() // consumes ']'
	if err != nil {
		return nil, err
	}
	d, ok := closeTok.(json.Delim)
	xerrors.Assert(ok && d == ']', "json.Decoder did not close an array with ']'")
	return ast.NewArray(startOffset, int(b.dec.InputOffset())-startOffset, items), nil
}

func (b *builder) object(startOffset int) (ast.Node, error) {
	var props []*ast.Property
	for b.dec.More() {
		keyOffset := b.skipSpace(int(b.dec.InputOffset()))
		keyTok, err := b.dec.Token()
		if err != nil {
			return nil, err
		}
		keyStr, ok := keyTok.(string)
		xerrors.Assert(ok, "json.Decoder returned a non-string object key")
		keyEnd := int(b.dec.InputOffset())
		key := ast.NewString(keyOffset, keyEnd-keyOffset, keyStr)

		// The decoder consumes the colon only when the value is read, so
		// the colon's offset is found by scanning the source from the end
		// of the key.
		colonOffset := keyEnd
		for colonOffset < len(b.text) && b.text[colonOffset] != ':' {
			colonOffset++
		}

		value, err := b.value()
		if err != nil {
			return nil, err
		}
		propEnd := int(b.dec.InputOffset())
		props = append(props, ast.NewProperty(keyOffset, propEnd-keyOffset, key, value, colonOffset))
	}
	closeTok, err := b.dec.Token() // consumes '}'
	if err != nil {
		return nil, err
	}
	d, ok := closeTok.(json.Delim)
	xerrors.Assert(ok && d == '}', "json.Decoder did not close an object with '}'")
	return ast.NewObject(startOffset, int(b.dec.InputOffset())-startOffset, props), nil
}

// skipSpace advances past whitespace and the ',' and ':' separators in
// b.text starting at offset, so that
// a node's recorded start offset points at its first significant byte
// rather than at trailing whitespace left over from the previous token.
func (b *builder) skipSpace(offset int) int {
	for offset < len(b.text) {
		switch b.text[offset] {
		case ' ', '\t', '\n', '\r', ',', ':':
			offset++
		default:
			return offset
		}
	}
	return offset
}
