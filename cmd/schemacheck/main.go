// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/internal/jsonbuilder"
	"github.com/abemedia/monaco-yaml/internal/xerrors"
	"github.com/abemedia/monaco-yaml/internal/yamlbuilder"
	"github.com/abemedia/monaco-yaml/schema"
	"github.com/abemedia/monaco-yaml/validate"
)

//go:embed doc.go
var doc string

var (
	schemaFlag = flag.String("schema", "", "path to the JSON schema to validate against (required)")
	jsonFlag   = flag.Bool("json", false, "treat the input document as JSON instead of YAML")
)

func usage() {
	_, after, _ := strings.Cut(doc, "/*\n")
	body, _, _ := strings.Cut(after, "*/")
	io.WriteString(flag.CommandLine.Output(), body+`
Flags:

`)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("schemacheck: ")
	log.SetFlags(0)

	// Internal invariant violations (xerrors.Assert) panic rather than
	// return an error; this is the one place they're recovered, so a
	// library bug exits cleanly instead of dumping a stack trace.
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("internal error: %v", r)
		}
	}()

	flag.Usage = usage
	flag.Parse()
	if *schemaFlag == "" || len(flag.Args()) != 1 {
		usage()
		os.Exit(2)
	}
	path := flag.Args()[0]

	s, err := loadSchema(*schemaFlag)
	if err != nil {
		log.Fatal(err)
	}
	root, err := loadDocument(path, *jsonFlag)
	if err != nil {
		log.Fatal(err)
	}

	document := validate.NewDocument(root)
	diagnostics := document.Validate(s, nil)

	worstIsError := false
	for _, d := range diagnostics {
		fmt.Printf("%s:%d: %s: %s\n", path, d.Offset, d.Severity, d.Message)
		if d.Severity == validate.SeverityError {
			worstIsError = true
		}
	}
	if worstIsError {
		os.Exit(1)
	}
}

func loadSchema(path string) (s *schema.Schema, err error) {
	defer xerrors.Wrapf(&err, "loading schema %q", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s = &schema.Schema{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func loadDocument(path string, asJSON bool) (root ast.Node, err error) {
	defer xerrors.Wrapf(&err, "loading document %q", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if asJSON || strings.HasSuffix(path, ".json") {
		return jsonbuilder.Build(data)
	}
	return yamlbuilder.Build(string(data))
}
