// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format implements the "format" keyword's canonical checks (§6):
// uri, uri-reference, email, and color-hex. Any other format name is
// ignored: Check reports no problem for it, per §4.7.
package format

import (
	"net/url"

	"github.com/dlclark/regexp2"
)

// The two format patterns are pinned bit-for-bit by §6 for cross-
// implementation conformance and compiled once at package init, mirroring
// how the teacher package's doc.go recommends github.com/dlclark/regexp2
// for ECMAScript-faithful regular expressions.
var (
	colorHexPattern = regexp2.MustCompile(`^#([0-9A-Fa-f]{3,4}|([0-9A-Fa-f]{2}){3,4})$`, regexp2.ECMAScript)
	emailPattern     = regexp2.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`, regexp2.ECMAScript)
)

// Check validates value against the named format. It returns an empty
// string when the format is unrecognized (ignored per §4.7) or the value
// satisfies it, and a human-readable problem message otherwise.
func Check(formatName, value string) string {
	switch formatName {
	case "uri":
		return checkURI(value, true)
	case "uri-reference":
		return checkURI(value, false)
	case "email":
		if !matches(emailPattern, value) {
			return "String is not an e-mail address."
		}
		return ""
	case "color-hex":
		if !matches(colorHexPattern, value) {
			return "Invalid color format. Use #RGB, #RGBA, #RRGGBB or #RRGGBBAA."
		}
		return ""
	default:
		return ""
	}
}

func checkURI(value string, requireScheme bool) string {
	if value == "" {
		return "URI expected."
	}
	u, err := url.Parse(value)
	if err != nil {
		return "URI is not valid: " + err.Error()
	}
	if requireScheme && u.Scheme == "" {
		return "URI with a scheme expected."
	}
	return ""
}

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}
