// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"unicode/utf8"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/internal/format"
	"github.com/abemedia/monaco-yaml/schema"
)

// validateString implements §4.7. Length is measured in Unicode code
// points, per §4.7's note that implementations may instead use UTF-16 code
// units to match common editor behavior -- this module chooses code points
// and documents the choice in DESIGN.md rather than matching editor
// behavior, since nothing downstream of this package renders to a UTF-16
// buffer.
func (st *state) validateString(n *ast.String, s *schema.Schema, result *Result) {
	length := utf8.RuneCountInString(n.Value)

	if s.MinLength != nil && length < *s.MinLength {
		result.AddProblem(Diagnostic{
			Offset: n.Offset(), Length: n.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "String is shorter than the minimum length of "+itoa(*s.MinLength)+"."),
		})
	}
	if s.MaxLength != nil && length > *s.MaxLength {
		result.AddProblem(Diagnostic{
			Offset: n.Offset(), Length: n.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "String is longer than the maximum length of "+itoa(*s.MaxLength)+"."),
		})
	}
	if s.Pattern != "" {
		re := compilePattern(s.Pattern)
		if re != nil && !matchString(re, n.Value) {
			msg := s.PatternErrorMessage
			if msg == "" {
				msg = applyErrorMessage(s, "String does not match the pattern of \""+s.Pattern+"\".")
			}
			result.AddProblem(Diagnostic{
				Offset: n.Offset(), Length: n.Length(),
				Severity: SeverityWarning,
				Message:  msg,
			})
		}
	}
	if s.Format != "" {
		if msg := format.Check(s.Format, n.Value); msg != "" {
			result.AddProblem(Diagnostic{
				Offset: n.Offset(), Length: n.Length(),
				Severity: SeverityWarning,
				Message:  applyErrorMessage(s, msg),
			})
		}
	}
}
