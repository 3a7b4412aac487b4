// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonbuilder

import (
	"testing"

	"github.com/abemedia/monaco-yaml/ast"
)

func TestBuildObject(t *testing.T) {
	root, err := Build([]byte(`{"x": 1, "y": "abc"}`))
	if err != nil {
		t.Fatal(err)
	}
	obj, ok := root.(*ast.Object)
	if !ok {
		t.Fatalf("root = %T, want *ast.Object", root)
	}
	if len(obj.Properties) != 2 {
		t.Fatalf("Properties = %v, want two", obj.Properties)
	}
	if obj.Properties[0].Key() != "x" || obj.Properties[1].Key() != "y" {
		t.Errorf("keys = %q, %q, want x, y in source order", obj.Properties[0].Key(), obj.Properties[1].Key())
	}
}

func TestBuildNumberOffsetSpansTheLiteral(t *testing.T) {
	text := `{"x": 12345}`
	root, err := Build([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	obj := root.(*ast.Object)
	num := obj.Properties[0].ValueNode.(*ast.Number)
	if text[num.Offset():num.Offset()+num.Length()] != "12345" {
		t.Errorf("span = %q, want %q", text[num.Offset():num.Offset()+num.Length()], "12345")
	}
}

func TestBuildArray(t *testing.T) {
	root, err := Build([]byte(`[1, 2, 3]`))
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := root.(*ast.Array)
	if !ok {
		t.Fatalf("root = %T, want *ast.Array", root)
	}
	if len(arr.Items) != 3 {
		t.Fatalf("Items = %v, want three", arr.Items)
	}
}

func TestBuildNestedObject(t *testing.T) {
	root, err := Build([]byte(`{"a": {"b": true}}`))
	if err != nil {
		t.Fatal(err)
	}
	outer := root.(*ast.Object)
	inner, ok := outer.Properties[0].ValueNode.(*ast.Object)
	if !ok {
		t.Fatalf("value = %T, want *ast.Object", outer.Properties[0].ValueNode)
	}
	b, ok := inner.Properties[0].ValueNode.(*ast.Boolean)
	if !ok || !b.Value {
		t.Errorf("inner value = %v, want Boolean(true)", inner.Properties[0].ValueNode)
	}
}

func TestBuildIntegerVsFloat(t *testing.T) {
	root, err := Build([]byte(`[1, 1.5]`))
	if err != nil {
		t.Fatal(err)
	}
	arr := root.(*ast.Array)
	if n, ok := arr.Items[0].(*ast.Number); !ok || !n.IsInteger {
		t.Errorf("Items[0] = %v, want an integer Number", arr.Items[0])
	}
	if n, ok := arr.Items[1].(*ast.Number); !ok || n.IsInteger {
		t.Errorf("Items[1] = %v, want a non-integer Number", arr.Items[1])
	}
}

func TestBuildRejectsMalformedJSON(t *testing.T) {
	if _, err := Build([]byte(`{"x": }`)); err == nil {
		t.Error("want an error for malformed JSON")
	}
}
