// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xerrors holds the two small error-handling helpers shared by the
// packages that actually return errors (schema loading, the AST builders,
// the CLI). The validation engine itself never returns an error -- its
// outcomes are diagnostics -- so these helpers live outside the validate
// package entirely.
package xerrors

import "fmt"

// Wrapf wraps *errp with the given formatted message if *errp is not nil.
// It is meant to be deferred:
//
//	func load(path string) (s *schema.Schema, err error) {
//		defer xerrors.Wrapf(&err, "loading schema %q", path)
//		...
//	}
func Wrapf(errp *error, format string, args ...any) {
	if *errp != nil {
		*errp = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), *errp)
	}
}

// Assert panics with msg if cond is false. It guards internal invariants
// that a caller cannot trip by passing bad input -- a violation means this
// module has a bug, not that the caller did something wrong.
func Assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
