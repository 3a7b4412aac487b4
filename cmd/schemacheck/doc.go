// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Schemacheck validates a YAML or JSON document against a JSON-Schema-style
schema and reports diagnostics.

Usage:

	schemacheck -schema schema.json document.yaml

Schemacheck reports one line per diagnostic, in the order the validator
emits them, of the form

	document.yaml:offset: Severity: message

and exits with status 1 if any diagnostic has severity Error.
*/
package main
