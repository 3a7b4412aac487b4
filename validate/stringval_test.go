// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"testing"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

func TestValidateStringMinMaxLength(t *testing.T) {
	s := ast.NewString(0, 3, "abc")
	schemaShort := &schema.Schema{MinLength: intp(5)}
	result := &Result{}
	Validate(s, schemaShort, result, NoopCollector)
	if !result.HasProblems() {
		t.Error("want a problem: string shorter than minLength")
	}

	schemaLong := &schema.Schema{MaxLength: intp(1)}
	result2 := &Result{}
	Validate(s, schemaLong, result2, NoopCollector)
	if !result2.HasProblems() {
		t.Error("want a problem: string longer than maxLength")
	}
}

func TestValidateStringLengthCountsCodePointsNotBytes(t *testing.T) {
	// "café" has 4 code points but 5 bytes (é is 2 bytes in UTF-8).
	str := ast.NewString(0, 5, "café")
	s := &schema.Schema{MaxLength: intp(4)}
	result := &Result{}
	Validate(str, s, result, NoopCollector)
	if result.HasProblems() {
		t.Errorf("Problems = %v, want none (4 code points satisfies maxLength:4)", result.Problems)
	}
}

func TestValidateStringPattern(t *testing.T) {
	str := ast.NewString(0, 3, "abc")
	s := &schema.Schema{Pattern: `^\d+$`}
	result := &Result{}
	Validate(str, s, result, NoopCollector)
	if !result.HasProblems() {
		t.Error("want a problem: \"abc\" does not match ^\\d+$")
	}
}

func TestValidateStringPatternErrorMessageOverride(t *testing.T) {
	str := ast.NewString(0, 3, "abc")
	s := &schema.Schema{Pattern: `^\d+$`, PatternErrorMessage: "must be digits"}
	result := &Result{}
	Validate(str, s, result, NoopCollector)
	if len(result.Problems) != 1 || result.Problems[0].Message != "must be digits" {
		t.Errorf("Problems = %v, want the patternErrorMessage override", result.Problems)
	}
}

func TestValidateStringFormatEmail(t *testing.T) {
	good := ast.NewString(0, 13, "a@example.com")
	s := &schema.Schema{Format: "email"}
	result := &Result{}
	Validate(good, s, result, NoopCollector)
	if result.HasProblems() {
		t.Errorf("Problems = %v, want none for a valid email", result.Problems)
	}

	bad := ast.NewString(0, 3, "abc")
	result2 := &Result{}
	Validate(bad, s, result2, NoopCollector)
	if !result2.HasProblems() {
		t.Error("want a problem for an invalid email")
	}
}

func TestValidateStringUnrecognizedFormatIgnored(t *testing.T) {
	str := ast.NewString(0, 3, "abc")
	s := &schema.Schema{Format: "made-up-format"}
	result := &Result{}
	Validate(str, s, result, NoopCollector)
	if result.HasProblems() {
		t.Errorf("Problems = %v, want none for an unrecognized format name", result.Problems)
	}
}
