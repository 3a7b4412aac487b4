// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

// Match is one applicable-schema record: the engine attempted to match
// Schema against Node, and Inverted reports whether an odd number of "not"
// boundaries separate this record from the node it was recorded for (§3.4).
type Match struct {
	Node     ast.Node
	Schema   *schema.Schema
	Inverted bool
}

// Collector is the capability described in §4.2: a sink for applicable-
// schema records, with a filter (Include) and the ability to spawn
// independent sub-collectors for alternative branches (anyOf/oneOf, not,
// if/then/else) so that only the winning branch's records get promoted.
type Collector interface {
	// Include reports whether n should be validated and its records kept.
	// The no-op collector below returns true for every node and discards
	// whatever is added to it.
	Include(n ast.Node) bool
	// Add records that schema was attempted against n.
	Add(m Match)
	// Merge absorbs all of other's already-recorded matches.
	Merge(other Collector)
	// NewSub returns an independent collector for evaluating one
	// alternative branch. Per §4.2, a sub-collector from a recording
	// collector always has focusOffset reset to "no filter", since the
	// caller decides later (via Merge) whether the branch's records should
	// be promoted at all.
	NewSub() Collector
}

// noopCollector discards everything. It is used for pure validation (no
// applicable-schema tracking wanted) and for the no-op-collector cases
// spec.md calls out explicitly: propertyNames validation (§4.5 step 9) and
// the "contains" existence check (§4.6), neither of which should pollute
// the caller's matching-schemas result.
type noopCollector struct{}

// NoopCollector is the process-wide singleton no-op Collector. It carries
// no state, so a single value can safely be shared across concurrent
// validations per §5.
var NoopCollector Collector = noopCollector{}

func (noopCollector) Include(ast.Node) bool  { return true }
func (noopCollector) Add(Match)              {}
func (noopCollector) Merge(Collector)        {}
func (noopCollector) NewSub() Collector      { return NoopCollector }

// recordingCollector is the variant used by Document.GetMatchingSchemas. It
// keeps every record whose node Include returns true for, per the
// focusOffset/exclude rule of §4.2.
type recordingCollector struct {
	focusOffset int // -1 means "no filter"
	exclude     ast.Node
	matches     []Match
}

// NewRecordingCollector returns a Collector that records every
// (node, schema, inverted) triple whose node is not exclude and, if
// focusOffset is not -1, whose span contains focusOffset.
func NewRecordingCollector(focusOffset int, exclude ast.Node) Collector {
	return &recordingCollector{focusOffset: focusOffset, exclude: exclude}
}

func (c *recordingCollector) Include(n ast.Node) bool {
	if n == c.exclude {
		return false
	}
	if c.focusOffset == -1 {
		return true
	}
	return n.Offset() <= c.focusOffset && c.focusOffset < n.Offset()+n.Length()
}

func (c *recordingCollector) Add(m Match) {
	c.matches = append(c.matches, m)
}

func (c *recordingCollector) Merge(other Collector) {
	oc, ok := other.(*recordingCollector)
	if !ok {
		return
	}
	c.matches = append(c.matches, oc.matches...)
}

func (c *recordingCollector) NewSub() Collector {
	return &recordingCollector{focusOffset: -1, exclude: c.exclude}
}

// Matches returns every record collected so far, in the order they were
// added.
func (c *recordingCollector) Matches() []Match { return c.matches }

// invertedCopy returns a Collector holding the same records as c (which
// must be a *recordingCollector, as produced by NewSub/NewRecordingCollector)
// but with every record's Inverted flag flipped. Used when crossing a "not"
// boundary (§4.3 step 2).
func invertedCopy(c Collector) Collector {
	rc, ok := c.(*recordingCollector)
	if !ok {
		return c
	}
	out := &recordingCollector{focusOffset: rc.focusOffset, exclude: rc.exclude}
	out.matches = make([]Match, len(rc.matches))
	for i, m := range rc.matches {
		m.Inverted = !m.Inverted
		out.matches[i] = m
	}
	return out
}
