// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"math"
	"strconv"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

// validateNumber implements §4.8.
func (st *state) validateNumber(n *ast.Number, s *schema.Schema, result *Result) {
	v := n.Value

	if s.MultipleOf != nil && *s.MultipleOf != 0 {
		if math.Mod(v, *s.MultipleOf) != 0 {
			result.AddProblem(Diagnostic{
				Offset: n.Offset(), Length: n.Length(),
				Severity: SeverityWarning,
				Message:  applyErrorMessage(s, "Value is not a multiple of "+formatFloat(*s.MultipleOf)+"."),
			})
		}
	}

	exclusiveMin, inclusiveMin := resolveBound(s.Minimum, s.ExclusiveMinimum)
	exclusiveMax, inclusiveMax := resolveBound(s.Maximum, s.ExclusiveMaximum)

	if exclusiveMin != nil && v <= *exclusiveMin {
		result.AddProblem(Diagnostic{
			Offset: n.Offset(), Length: n.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "Value is below the exclusive minimum of "+formatFloat(*exclusiveMin)+"."),
		})
	}
	if exclusiveMax != nil && v >= *exclusiveMax {
		result.AddProblem(Diagnostic{
			Offset: n.Offset(), Length: n.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "Value is above the exclusive maximum of "+formatFloat(*exclusiveMax)+"."),
		})
	}
	if inclusiveMin != nil && v < *inclusiveMin {
		result.AddProblem(Diagnostic{
			Offset: n.Offset(), Length: n.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "Value is below the minimum of "+formatFloat(*inclusiveMin)+"."),
		})
	}
	if inclusiveMax != nil && v > *inclusiveMax {
		result.AddProblem(Diagnostic{
			Offset: n.Offset(), Length: n.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "Value is above the maximum of "+formatFloat(*inclusiveMax)+"."),
		})
	}
}

// resolveBound implements §4.8's exclusive/inclusive bound derivation: a
// boolean exclusiveX repurposes the adjacent bound (minimum/maximum) as
// exclusive and leaves no inclusive bound; a numeric exclusiveX is an
// independent exclusive bound, and the adjacent bound remains inclusive.
func resolveBound(bound *float64, exclusive *schema.BoolOrNumber) (exclusiveBound, inclusiveBound *float64) {
	if exclusive == nil {
		return nil, bound
	}
	if exclusive.Bool != nil {
		if *exclusive.Bool {
			return bound, nil
		}
		return nil, bound
	}
	if exclusive.Num != nil {
		return exclusive.Num, bound
	}
	return nil, bound
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
