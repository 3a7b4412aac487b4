// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"math"

	"github.com/abemedia/monaco-yaml/ast"
)

// nodeValue converts an AST node into the plain Go value it represents, so
// that it can be compared against a schema's enum/const values (themselves
// plain Go values decoded from JSON, e.g. map[string]any / []any /
// float64 / string / bool / nil). This is the only place the validator
// reaches back from the AST into an untyped value; it exists purely to
// support enum/const/uniqueItems comparisons (§4.3, §4.6).
func nodeValue(n ast.Node) any {
	switch v := n.(type) {
	case nil:
		return nil
	case *ast.Null:
		return nil
	case *ast.Boolean:
		return v.Value
	case *ast.Number:
		return v.Value
	case *ast.String:
		return v.Value
	case *ast.Array:
		out := make([]any, len(v.Items))
		for i, it := range v.Items {
			out[i] = nodeValue(it)
		}
		return out
	case *ast.Object:
		out := make(map[string]any, len(v.Properties))
		for _, p := range v.Properties {
			out[p.Key()] = nodeValue(p.ValueNode)
		}
		return out
	default:
		return nil
	}
}

// deepEqual implements the structural equality of §4.3/§9: null, booleans,
// numbers, and strings compare by value identity; arrays compare
// element-wise in order; objects compare by identical key sets with
// key-wise equal values. Numbers compare by IEEE-754 bit equality, so NaN
// never equals NaN, per the design note in §9.
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return false
		}
		return math.Float64bits(av) == math.Float64bits(bv)
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !deepEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
