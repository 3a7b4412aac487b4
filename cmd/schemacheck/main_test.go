// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abemedia/monaco-yaml/ast"
)

func TestLoadSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, []byte(`{"type": "object"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := loadSchema(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Type != "object" {
		t.Errorf("Type = %q, want %q", s.Type, "object")
	}
}

func TestLoadSchemaMissingFileWrapsError(t *testing.T) {
	_, err := loadSchema(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("want an error for a missing file")
	}
	if got := err.Error(); !strings.Contains(got, "loading schema") {
		t.Errorf("err = %q, want it wrapped with context", got)
	}
}

func TestLoadDocumentYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root, err := loadDocument(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := root.(*ast.Object); !ok {
		t.Errorf("root = %T, want *ast.Object", root)
	}
}

func TestLoadDocumentJSONFlagOverridesExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml") // .yaml extension, but -json forces JSON parsing
	if err := os.WriteFile(path, []byte(`{"x": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	root, err := loadDocument(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := root.(*ast.Object); !ok {
		t.Errorf("root = %T, want *ast.Object", root)
	}
}

func TestLoadDocumentJSONExtensionAutoDetected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`[1, 2]`), 0o644); err != nil {
		t.Fatal(err)
	}
	root, err := loadDocument(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := root.(*ast.Array); !ok {
		t.Errorf("root = %T, want *ast.Array", root)
	}
}

func TestUsagePrintsDocCommentBody(t *testing.T) {
	var out strings.Builder
	var buf writerFunc = func(p []byte) (int, error) { return out.Write(p) }
	flag.CommandLine.SetOutput(buf)
	usage()
	if got := out.String(); !strings.Contains(got, "schemacheck -schema schema.json document.yaml") {
		t.Errorf("usage() printed %q, want the doc comment's usage line", got)
	}
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
