// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"testing"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

func TestValidateArrayTupleItems(t *testing.T) {
	items := []ast.Node{
		ast.NewString(0, 1, "a"),
		ast.NewNumber(2, 1, 1, true),
	}
	arr := ast.NewArray(0, 3, items)
	s := &schema.Schema{
		Tuple:      true,
		ItemsTuple: []*schema.Schema{{Type: "string"}, {Type: "string"}},
	}
	result := &Result{}
	Validate(arr, s, result, NoopCollector)
	if len(result.Problems) != 1 {
		t.Fatalf("Problems = %v, want one (second item is a number, not a string)", result.Problems)
	}
}

func TestValidateArrayAdditionalItemsFalse(t *testing.T) {
	items := []ast.Node{
		ast.NewString(0, 1, "a"),
		ast.NewNumber(2, 1, 1, true),
	}
	arr := ast.NewArray(0, 3, items)
	s := &schema.Schema{
		Tuple:           true,
		ItemsTuple:      []*schema.Schema{{Type: "string"}},
		AdditionalItems: schema.False(),
	}
	result := &Result{}
	Validate(arr, s, result, NoopCollector)
	found := false
	for _, p := range result.Problems {
		if p.Message == "Array has too many items according to schema. Expected 1 or fewer." {
			found = true
		}
	}
	if !found {
		t.Errorf("Problems = %v, want the too-many-items message", result.Problems)
	}
}

func TestValidateArraySingleSchemaItems(t *testing.T) {
	items := []ast.Node{
		ast.NewNumber(0, 1, 1, true),
		ast.NewString(2, 3, "abc"),
	}
	arr := ast.NewArray(0, 5, items)
	s := &schema.Schema{Items: &schema.Schema{Type: "number"}}
	result := &Result{}
	Validate(arr, s, result, NoopCollector)
	if len(result.Problems) != 1 {
		t.Fatalf("Problems = %v, want one (the string item fails type:number)", result.Problems)
	}
}

func TestValidateArrayContains(t *testing.T) {
	items := []ast.Node{
		ast.NewNumber(0, 1, 1, true),
		ast.NewNumber(2, 1, 2, true),
	}
	arr := ast.NewArray(0, 3, items)
	s := &schema.Schema{Contains: &schema.Schema{Minimum: f64p(2)}}
	result := &Result{}
	Validate(arr, s, result, NoopCollector)
	if result.HasProblems() {
		t.Errorf("Problems = %v, want none (one item satisfies contains)", result.Problems)
	}
}

func TestValidateArrayContainsNoMatch(t *testing.T) {
	items := []ast.Node{ast.NewNumber(0, 1, 1, true)}
	arr := ast.NewArray(0, 1, items)
	s := &schema.Schema{Contains: &schema.Schema{Minimum: f64p(5)}}
	result := &Result{}
	Validate(arr, s, result, NoopCollector)
	if !result.HasProblems() {
		t.Error("want a problem when no item satisfies contains")
	}
}

func TestValidateArrayMaxItems(t *testing.T) {
	items := []ast.Node{ast.NewNumber(0, 1, 1, true), ast.NewNumber(2, 1, 2, true)}
	arr := ast.NewArray(0, 3, items)
	s := &schema.Schema{MaxItems: intp(1)}
	result := &Result{}
	Validate(arr, s, result, NoopCollector)
	if len(result.Problems) != 1 {
		t.Fatalf("Problems = %v, want one", result.Problems)
	}
}

func TestFirstDuplicateDetectsRepeatedObjects(t *testing.T) {
	a := ast.NewObject(0, 1, []*ast.Property{prop("k", ast.NewNumber(1, 1, 1, true), 0)})
	b := ast.NewObject(2, 1, []*ast.Property{prop("k", ast.NewNumber(3, 1, 1, true), 2)})
	if !firstDuplicate([]ast.Node{a, b}) {
		t.Error("want duplicate detected for structurally equal objects")
	}
}

func TestFirstDuplicateNoFalsePositive(t *testing.T) {
	a := ast.NewNumber(0, 1, 1, true)
	b := ast.NewNumber(1, 1, 2, true)
	if firstDuplicate([]ast.Node{a, b}) {
		t.Error("want no duplicate for distinct numbers")
	}
}
