// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate implements the core validation engine described in §4
// of the specification: a recursive walk of an AST (see the sibling ast
// package) driven by a JSON-Schema-style value (see the sibling schema
// package), accumulating diagnostics and, optionally, the set of schemas
// that apply to each node.
package validate

import (
	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

// maxValidationDepth bounds recursion across AST depth and schema
// combinator depth combined (§5). It is chosen generously: real schemas
// nest at most a few dozen levels deep, so this only fires on pathological
// or adversarial input.
const maxValidationDepth = 2000

// state carries the per-run recursion guard described in §5 and §7: rather
// than let a stack-exhausting input crash the process, validation aborts
// and reports one synthetic diagnostic at the root.
type state struct {
	depth    int
	root     ast.Node
	aborted  bool
}

// Validate walks node against s, accumulating diagnostics and score
// bookkeeping into result and applicable-schema records into collector.
// This is the entry point spec.md calls "the core validate(node, schema,
// result, collector) procedure" (§2 item 3, §4.3).
func Validate(node ast.Node, s *schema.Schema, result *Result, collector Collector) {
	st := &state{root: node}
	st.validate(node, s, result, collector)
}

func (st *state) validate(node ast.Node, s *schema.Schema, result *Result, collector Collector) {
	if st.aborted {
		return
	}
	st.depth++
	defer func() { st.depth-- }()
	if st.depth > maxValidationDepth {
		st.aborted = true
		result.AddProblem(Diagnostic{
			Offset:   st.root.Offset(),
			Length:   maxInt(st.root.Length(), 1),
			Severity: SeverityWarning,
			Message:  "Validation was aborted: the document or schema is nested too deeply to validate safely.",
		})
		return
	}

	if node == nil {
		return
	}
	if !collector.Include(node) {
		return
	}

	s = schema.AsObject(s)

	if p, ok := node.(*ast.Property); ok {
		if p.ValueNode != nil {
			st.validate(p.ValueNode, s, result, collector)
		}
		return
	}

	// 1. Type-specific pass (§4.3 step 1).
	switch n := node.(type) {
	case *ast.Object:
		st.validateObject(n, s, result, collector)
	case *ast.Array:
		st.validateArray(n, s, result, collector)
	case *ast.String:
		st.validateString(n, s, result)
	case *ast.Number:
		st.validateNumber(n, s, result)
	}

	// 2. Shared pass, in the deterministic order §5 pins down.
	st.validateType(node, s, result)
	if s.AllOf != nil {
		for _, sub := range s.AllOf {
			st.validate(node, sub, result, collector)
		}
	}
	if s.Not != nil {
		st.validateNot(node, s, result, collector)
	}
	if s.AnyOf != nil {
		st.validateAlternatives(node, s.AnyOf, false, result, collector)
	}
	if s.OneOf != nil {
		st.validateAlternatives(node, s.OneOf, true, result, collector)
	}
	if s.If != nil {
		st.validateIfThenElse(node, s, result, collector)
	}
	if s.Enum != nil {
		st.validateEnum(node, s, result)
	}
	if s.Const != nil {
		st.validateConst(node, s, result)
	}
	if s.DeprecationMessage != "" {
		st.validateDeprecation(node, s, result)
	}

	// 3. Record applicability (§4.3 step 3), regardless of outcome.
	collector.Add(Match{Node: node, Schema: s})
}

func (st *state) validateType(node ast.Node, s *schema.Schema, result *Result) {
	if s.Type == "" && s.Types == nil {
		return
	}
	got := astTypeName(node)
	matches := func(want string) bool {
		if want == "integer" {
			num, ok := node.(*ast.Number)
			return ok && num.IsInteger
		}
		return want == got
	}
	if s.Type != "" {
		if !matches(s.Type) {
			result.TypeMismatch = true
			result.AddProblem(Diagnostic{
				Offset: node.Offset(), Length: node.Length(),
				Severity: SeverityWarning,
				Message:  applyErrorMessage(s, typeMismatchMessage(got, s.Type)),
			})
		}
		return
	}
	for _, t := range s.Types {
		if matches(t) {
			return
		}
	}
	result.TypeMismatch = true
	result.AddProblem(Diagnostic{
		Offset: node.Offset(), Length: node.Length(),
		Severity: SeverityWarning,
		Message:  applyErrorMessage(s, typeMismatchMessageList(got, s.Types)),
	})
}

func (st *state) validateNot(node ast.Node, s *schema.Schema, result *Result, collector Collector) {
	subResult := &Result{}
	subCollector := collector.NewSub()
	st.validate(node, s.Not, subResult, subCollector)
	if !subResult.HasProblems() {
		result.AddProblem(Diagnostic{
			Offset: node.Offset(), Length: node.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "Matches a schema that is not allowed."),
		})
	}
	collector.Merge(invertedCopy(subCollector))
}

func (st *state) validateIfThenElse(node ast.Node, s *schema.Schema, result *Result, collector Collector) {
	ifResult := &Result{}
	ifCollector := collector.NewSub()
	st.validate(node, s.If, ifResult, ifCollector)
	collector.Merge(ifCollector)
	if !ifResult.HasProblems() {
		if s.Then != nil {
			st.validate(node, s.Then, result, collector)
		}
	} else if s.Else != nil {
		st.validate(node, s.Else, result, collector)
	}
}

func (st *state) validateEnum(node ast.Node, s *schema.Schema, result *Result) {
	result.EnumValues = s.Enum
	val := nodeValue(node)
	match := false
	for _, e := range s.Enum {
		if deepEqual(val, e) {
			match = true
			break
		}
	}
	result.EnumValueMatch = match
	if !match {
		result.AddProblem(Diagnostic{
			Offset: node.Offset(), Length: node.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, enumMismatchMessage(s.Enum)),
			Code:     CodeEnumValueMismatch,
		})
	}
}

func (st *state) validateConst(node ast.Node, s *schema.Schema, result *Result) {
	result.EnumValues = []any{*s.Const}
	match := deepEqual(nodeValue(node), *s.Const)
	result.EnumValueMatch = match
	if !match {
		result.AddProblem(Diagnostic{
			Offset: node.Offset(), Length: node.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, constMismatchMessage(*s.Const)),
			Code:     CodeEnumValueMismatch,
		})
	}
}

func (st *state) validateDeprecation(node ast.Node, s *schema.Schema, result *Result) {
	parent := node.Parent()
	if parent == nil {
		return
	}
	result.AddProblem(Diagnostic{
		Offset: parent.Offset(), Length: parent.Length(),
		Severity: SeverityWarning,
		Message:  s.DeprecationMessage,
	})
}

// validateAlternatives implements §4.4's anyOf/oneOf branch selection.
func (st *state) validateAlternatives(node ast.Node, alternatives []*schema.Schema, maxOneMatch bool, result *Result, collector Collector) {
	type branch struct {
		result    *Result
		collector Collector
	}
	var best *branch
	matchCount := 0

	for _, sub := range alternatives {
		subResult := &Result{}
		subCollector := collector.NewSub()
		st.validate(node, sub, subResult, subCollector)
		if !subResult.HasProblems() {
			matchCount++
		}

		cur := &branch{subResult, subCollector}
		switch {
		case best == nil:
			best = cur
		case !best.result.HasProblems() && !subResult.HasProblems() && !maxOneMatch:
			best.collector.Merge(subCollector)
			best.result.PropertiesMatches += subResult.PropertiesMatches
			best.result.PropertiesValueMatches += subResult.PropertiesValueMatches
		default:
			switch subResult.Compare(best.result) {
			case 1:
				best = cur
			case 0:
				best.collector.Merge(subCollector)
				best.result.MergeEnumValues(subResult)
			}
		}
	}
	if best == nil {
		return
	}

	if maxOneMatch && matchCount > 1 {
		result.AddProblem(Diagnostic{
			Offset: node.Offset(), Length: 1,
			Severity: SeverityWarning,
			Message:  "Matches multiple schemas when only one must validate.",
		})
	}

	result.Merge(best.result)
	result.PropertiesMatches += best.result.PropertiesMatches
	result.PropertiesValueMatches += best.result.PropertiesValueMatches
	collector.Merge(best.collector)
}

func applyErrorMessage(s *schema.Schema, generated string) string {
	if s.ErrorMessage != "" {
		return s.ErrorMessage
	}
	return generated
}

func astTypeName(node ast.Node) string {
	switch node.(type) {
	case *ast.Null:
		return "null"
	case *ast.Boolean:
		return "boolean"
	case *ast.Number:
		return "number"
	case *ast.String:
		return "string"
	case *ast.Array:
		return "array"
	case *ast.Object:
		return "object"
	default:
		return "unknown"
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
