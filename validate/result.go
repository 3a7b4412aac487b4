// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

// Result is a mutable accumulator of diagnostics plus the three integer
// match scores and enum-match flag described in §3.3/§4.1. It is the core's
// scoring currency: Compare gives a total order over Results that the
// anyOf/oneOf alternative-selection algorithm (§4.4) uses to pick the best
// branch to report.
type Result struct {
	Problems []Diagnostic

	PropertiesMatches      int
	PropertiesValueMatches int
	PrimaryValueMatches    int

	EnumValueMatch bool
	// EnumValues holds the full enum list the last "enum" or "const"
	// keyword checked this node against, whether or not it matched. Nil
	// means no enum/const keyword has been evaluated for this node yet.
	EnumValues []any

	// TypeMismatch records whether this node's own "type" keyword check
	// failed. It is not propagated by Merge/MergePropertyMatch -- it
	// describes this node against this schema, not anything nested -- and
	// exists purely as an alternative-selection tie-breaker: a branch whose
	// declared type doesn't even match the node is a strictly worse fit
	// than one whose type matches but loses on some other constraint, even
	// when both branches happen to report the same problem count.
	TypeMismatch bool
}

// HasProblems reports whether any diagnostic has been recorded.
func (r *Result) HasProblems() bool { return len(r.Problems) > 0 }

// AddProblem appends a single diagnostic.
func (r *Result) AddProblem(d Diagnostic) { r.Problems = append(r.Problems, d) }

// Merge appends other's problems to r. Scores are untouched: callers that
// want the scoring side effects use MergePropertyMatch instead.
func (r *Result) Merge(other *Result) {
	r.Problems = append(r.Problems, other.Problems...)
}

// MergeEnumValues implements §4.1's enum-coalescing rule: when both r and
// other failed their own enum/const check and both recorded the candidate
// list, the lists are concatenated and every existing EnumValueMismatch
// diagnostic on r has its message rewritten to cite the combined list. This
// is what lets "anyOf: [{enum:[1,2]}, {enum:[3,4]}]" report a single
// "Value is not accepted. Valid values: 1, 2, 3, or 4." message instead of
// two separate ones.
func (r *Result) MergeEnumValues(other *Result) {
	if r.EnumValueMatch || other.EnumValueMatch {
		return
	}
	if r.EnumValues == nil || other.EnumValues == nil {
		return
	}
	combined := append(append([]any{}, r.EnumValues...), other.EnumValues...)
	r.EnumValues = combined
	msg := enumMismatchMessage(combined)
	for i := range r.Problems {
		if r.Problems[i].Code == CodeEnumValueMismatch {
			r.Problems[i].Message = msg
		}
	}
}

// MergePropertyMatch implements §4.1: merges child's problems into r, then
// always bumps PropertiesMatches, and additionally bumps
// PropertiesValueMatches when child represents a "good" match (an enum hit,
// or a clean validation that itself matched at least one property).
// Finally, if child's enum match was effectively a const-style single-value
// match, PrimaryValueMatches is bumped too.
//
// This is used both by object validation (§4.5, one call per "properties"/
// "dependencies" entry) and by array tuple validation (§4.6) -- the field
// names are object-shaped but the bookkeeping is shared, per §9's note that
// this is "load-bearing for ranking" and must stay that way.
func (r *Result) MergePropertyMatch(child *Result) {
	r.Merge(child)
	r.PropertiesMatches++
	if child.EnumValueMatch || (!child.HasProblems() && child.PropertiesMatches > 0) {
		r.PropertiesValueMatches++
	}
	if child.EnumValueMatch && len(child.EnumValues) == 1 {
		r.PrimaryValueMatches++
	}
}

// Compare returns a positive number if r should be preferred over other, a
// negative number if other should be preferred, and 0 if neither
// dominates, per the lexicographic order of §4.1: no-problems beats
// has-problems, then no TypeMismatch beats TypeMismatch, then
// enumValueMatch, then PrimaryValueMatches, then PropertiesValueMatches,
// then PropertiesMatches.
func (r *Result) Compare(other *Result) int {
	if c := boolCompare(!r.HasProblems(), !other.HasProblems()); c != 0 {
		return c
	}
	if c := boolCompare(!r.TypeMismatch, !other.TypeMismatch); c != 0 {
		return c
	}
	if c := boolCompare(r.EnumValueMatch, other.EnumValueMatch); c != 0 {
		return c
	}
	if c := intCompare(r.PrimaryValueMatches, other.PrimaryValueMatches); c != 0 {
		return c
	}
	if c := intCompare(r.PropertiesValueMatches, other.PropertiesValueMatches); c != 0 {
		return c
	}
	return intCompare(r.PropertiesMatches, other.PropertiesMatches)
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func intCompare(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
