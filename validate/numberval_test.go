// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"testing"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

func TestValidateNumberMultipleOf(t *testing.T) {
	n := ast.NewNumber(0, 1, 7, true)
	s := &schema.Schema{MultipleOf: f64p(2)}
	result := &Result{}
	Validate(n, s, result, NoopCollector)
	if !result.HasProblems() {
		t.Error("want a problem: 7 is not a multiple of 2")
	}
}

func TestValidateNumberExclusiveMinimumBooleanFlag(t *testing.T) {
	n := ast.NewNumber(0, 1, 5, true)
	b := true
	s := &schema.Schema{Minimum: f64p(5), ExclusiveMinimum: &schema.BoolOrNumber{Bool: &b}}
	result := &Result{}
	Validate(n, s, result, NoopCollector)
	if !result.HasProblems() {
		t.Error("want a problem: 5 is not strictly greater than the exclusive minimum of 5")
	}
}

func TestValidateNumberMinimumInclusiveWhenNotExclusive(t *testing.T) {
	n := ast.NewNumber(0, 1, 5, true)
	s := &schema.Schema{Minimum: f64p(5)}
	result := &Result{}
	Validate(n, s, result, NoopCollector)
	if result.HasProblems() {
		t.Errorf("Problems = %v, want none: 5 satisfies an inclusive minimum of 5", result.Problems)
	}
}

func TestValidateNumberExclusiveMinimumDraft7Number(t *testing.T) {
	n := ast.NewNumber(0, 1, 5, true)
	s := &schema.Schema{ExclusiveMinimum: &schema.BoolOrNumber{Num: f64p(5)}}
	result := &Result{}
	Validate(n, s, result, NoopCollector)
	if !result.HasProblems() {
		t.Error("want a problem: 5 is not strictly greater than an independent exclusive minimum of 5")
	}
}

func TestResolveBoundDraft4FalseLeavesInclusive(t *testing.T) {
	b := false
	exclusive, inclusive := resolveBound(f64p(5), &schema.BoolOrNumber{Bool: &b})
	if exclusive != nil {
		t.Errorf("exclusive = %v, want nil", *exclusive)
	}
	if inclusive == nil || *inclusive != 5 {
		t.Errorf("inclusive = %v, want 5", inclusive)
	}
}

func TestValidateNumberMaximum(t *testing.T) {
	n := ast.NewNumber(0, 2, 15, true)
	s := &schema.Schema{Maximum: f64p(10)}
	result := &Result{}
	Validate(n, s, result, NoopCollector)
	if !result.HasProblems() {
		t.Error("want a problem: 15 exceeds the maximum of 10")
	}
}
