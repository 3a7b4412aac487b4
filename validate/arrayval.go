// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"strconv"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

func itoa(n int) string { return strconv.Itoa(n) }

// validateArray implements §4.6.
func (st *state) validateArray(arr *ast.Array, s *schema.Schema, result *Result, collector Collector) {
	if s.Tuple {
		for i, itemSchema := range s.ItemsTuple {
			if i < len(arr.Items) {
				subResult := &Result{}
				st.validate(arr.Items[i], itemSchema, subResult, collector)
				result.MergePropertyMatch(subResult)
			} else if len(arr.Items) >= len(s.ItemsTuple) {
				// Faithful port of the source behavior described in the
				// specification: this branch requires i >= len(arr.Items)
				// and i < len(s.ItemsTuple) simultaneously with
				// len(arr.Items) >= len(s.ItemsTuple), which is never
				// satisfiable -- kept for parity rather than "fixed".
				result.PropertiesValueMatches++
			}
		}
		if s.AdditionalItems != nil {
			for i := len(s.ItemsTuple); i < len(arr.Items); i++ {
				if schema.IsFalse(s.AdditionalItems) {
					result.AddProblem(Diagnostic{
						Offset: arr.Offset(), Length: arr.Length(),
						Severity: SeverityWarning,
						Message:  "Array has too many items according to schema. Expected " + itoa(len(s.ItemsTuple)) + " or fewer.",
					})
					break
				}
				if !schema.IsTrue(s.AdditionalItems) {
					st.validate(arr.Items[i], s.AdditionalItems, result, collector)
				}
			}
		}
	} else if s.Items != nil {
		for _, item := range arr.Items {
			subResult := &Result{}
			st.validate(item, s.Items, subResult, collector)
			result.MergePropertyMatch(subResult)
		}
	}

	if s.Contains != nil {
		found := false
		for _, item := range arr.Items {
			subResult := &Result{}
			st.validate(item, s.Contains, subResult, NoopCollector)
			if !subResult.HasProblems() {
				found = true
				break
			}
		}
		if !found {
			result.AddProblem(Diagnostic{
				Offset: arr.Offset(), Length: arr.Length(),
				Severity: SeverityWarning,
				Message:  "Array does not contain a required item.",
			})
		}
	}

	if s.MinItems != nil && len(arr.Items) < *s.MinItems {
		result.AddProblem(Diagnostic{
			Offset: arr.Offset(), Length: arr.Length(),
			Severity: SeverityWarning,
			Message:  "Array has too few items. Expected " + itoa(*s.MinItems) + " or more.",
		})
	}
	if s.MaxItems != nil && len(arr.Items) > *s.MaxItems {
		result.AddProblem(Diagnostic{
			Offset: arr.Offset(), Length: arr.Length(),
			Severity: SeverityWarning,
			Message:  "Array has too many items. Expected " + itoa(*s.MaxItems) + " or fewer.",
		})
	}

	if s.UniqueItems {
		if dupe := firstDuplicate(arr.Items); dupe {
			result.AddProblem(Diagnostic{
				Offset: arr.Offset(), Length: arr.Length(),
				Severity: SeverityWarning,
				Message:  "Array has duplicate items.",
			})
		}
	}
}

func firstDuplicate(items []ast.Node) bool {
	values := make([]any, len(items))
	for i, it := range items {
		values[i] = nodeValue(it)
	}
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if deepEqual(values[i], values[j]) {
				return true
			}
		}
	}
	return false
}
