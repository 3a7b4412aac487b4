// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// enumMismatchMessage formats the message for a CodeEnumValueMismatch
// diagnostic, listing the allowed values the way monaco-yaml/
// vscode-json-languageservice do ("x", "y", or "z").
func enumMismatchMessage(allowed []any) string {
	if len(allowed) == 0 {
		return "Value is not accepted. Valid values: none."
	}
	parts := make([]string, len(allowed))
	for i, v := range allowed {
		parts[i] = formatValue(v)
	}
	return "Value is not accepted. Valid values: " + joinWithOr(parts) + "."
}

func joinWithOr(parts []string) string {
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case nil:
		return "null"
	default:
		return fmt.Sprint(t)
	}
}

func constMismatchMessage(v any) string {
	return fmt.Sprintf("Value must be %s.", formatValue(v))
}

func typeMismatchMessage(got string, want string) string {
	return fmt.Sprintf("Incorrect type. Expected %q.", want)
}

func typeMismatchMessageList(got string, want []string) string {
	return fmt.Sprintf("Incorrect type. Expected one of %s.", strings.Join(quoteAll(want), ", "))
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}
	return out
}
