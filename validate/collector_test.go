// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"testing"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

func TestNoopCollectorDiscardsEverything(t *testing.T) {
	n := ast.NewNull(0, 4)
	NoopCollector.Add(Match{Node: n, Schema: schema.True()})
	if !NoopCollector.Include(n) {
		t.Errorf("NoopCollector.Include = false, want true")
	}
	if NoopCollector.NewSub() != NoopCollector {
		t.Errorf("NoopCollector.NewSub() should return itself")
	}
}

func TestRecordingCollectorFocusOffset(t *testing.T) {
	in := ast.NewNull(10, 5) // [10,15)
	out := ast.NewNull(0, 2) // [0,2)

	c := NewRecordingCollector(12, nil)
	if !c.Include(in) {
		t.Errorf("Include(in-range node) = false, want true")
	}
	if c.Include(out) {
		t.Errorf("Include(out-of-range node) = true, want false")
	}
}

func TestRecordingCollectorExclude(t *testing.T) {
	n := ast.NewNull(0, 4)
	c := NewRecordingCollector(-1, n)
	if c.Include(n) {
		t.Errorf("Include(excluded node) = true, want false")
	}
}

func TestRecordingCollectorMergeAndInvert(t *testing.T) {
	n := ast.NewNull(0, 4)
	sub := NewRecordingCollector(-1, nil)
	sub.Add(Match{Node: n, Schema: schema.True()})

	inverted := invertedCopy(sub)
	outer := NewRecordingCollector(-1, nil)
	outer.Merge(inverted)

	rc := outer.(*recordingCollector)
	if len(rc.matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(rc.matches))
	}
	if !rc.matches[0].Inverted {
		t.Errorf("Inverted = false, want true after crossing one not boundary")
	}
}

func TestNewSubResetsFocus(t *testing.T) {
	c := NewRecordingCollector(5, nil).NewSub().(*recordingCollector)
	if c.focusOffset != -1 {
		t.Errorf("NewSub().focusOffset = %d, want -1", c.focusOffset)
	}
}
