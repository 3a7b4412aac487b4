// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

// Document wraps a parsed root node and exposes the four operations §6
// assigns to the document façade.
type Document struct {
	root ast.Node
}

// NewDocument wraps root. root may be nil, representing an empty document.
func NewDocument(root ast.Node) *Document { return &Document{root: root} }

// Root returns the wrapped AST root.
func (d *Document) Root() ast.Node { return d.root }

// Options configures Validate's severity knob (§7: "implementations may
// expose a knob to promote to Error but must not change the default").
type Options struct {
	// Severity overrides the default severity for a diagnostic. It is
	// called once per diagnostic in emission order; returning the zero
	// Severity (SeverityError) is a valid override -- leave Severity nil to
	// keep every diagnostic at the default SeverityWarning, per §7.
	Severity func(Diagnostic) Severity
}

// defaultSeverity matches vscode-json-languageservice/monaco-yaml's own
// deviation from a flat "everything is a warning" default: an
// EnumValueMismatch is already surfaced as an Error there, because picking
// a value outside a closed enum is almost never intentional. Every other
// diagnostic stays at SeverityWarning, as §7 requires.
func defaultSeverity(d Diagnostic) Severity {
	if d.Code == CodeEnumValueMismatch {
		return SeverityError
	}
	return SeverityWarning
}

// Validate runs the engine with a no-op collector and returns only the
// resulting diagnostics (§6).
func (d *Document) Validate(s *schema.Schema, opts *Options) []Diagnostic {
	result := &Result{}
	if d.root != nil {
		Validate(d.root, s, result, NoopCollector)
	}
	return applySeverity(result.Problems, opts)
}

// GetMatchingSchemas runs the engine with a recording collector and
// returns the applicable-schema records; diagnostics are discarded (§6).
func (d *Document) GetMatchingSchemas(s *schema.Schema, focusOffset int, exclude ast.Node) []Match {
	result := &Result{}
	collector := NewRecordingCollector(focusOffset, exclude)
	if d.root != nil {
		Validate(d.root, s, result, collector)
	}
	rc, ok := collector.(*recordingCollector)
	if !ok {
		return nil
	}
	return rc.Matches()
}

// GetNodeAtOffset returns the deepest node containing offset, or nil.
func (d *Document) GetNodeAtOffset(offset int, includeRightBound bool) ast.Node {
	return ast.NodeAtOffset(d.root, offset, includeRightBound)
}

// Visit performs a pre-order traversal; see ast.Visit.
func (d *Document) Visit(fn func(ast.Node) bool) {
	ast.Visit(d.root, fn)
}

func applySeverity(problems []Diagnostic, opts *Options) []Diagnostic {
	sev := defaultSeverity
	if opts != nil && opts.Severity != nil {
		sev = opts.Severity
	}
	out := make([]Diagnostic, len(problems))
	for i, p := range problems {
		p.Severity = sev(p)
		out[i] = p
	}
	return out
}
