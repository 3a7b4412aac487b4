// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"sync"

	"github.com/dlclark/regexp2"
)

// regexCache memoizes compiled patterns across validate calls. Schema
// values are read-only and may be validated against many documents (§5), so
// recompiling "pattern"/"patternProperties" regexes on every node would be
// wasteful; the teacher package takes the analogous approach by caching a
// compiled regexp on the Schema itself during its one-time check pass. This
// module keeps Schema free of engine-owned mutable state and caches
// externally instead.
var regexCache sync.Map // pattern string -> *regexp2.Regexp (nil if invalid)

// compilePattern compiles pattern as an ECMAScript-flavored regular
// expression (§4.7, §9 "Regex engine"). An invalid pattern is cached as nil
// and silently disables whatever check requested it, per §7.
func compilePattern(pattern string) *regexp2.Regexp {
	if v, ok := regexCache.Load(pattern); ok {
		re, _ := v.(*regexp2.Regexp)
		return re
	}
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		regexCache.Store(pattern, (*regexp2.Regexp)(nil))
		return nil
	}
	regexCache.Store(pattern, re)
	return re
}

// matchString reports whether s matches re, treating a matching error (e.g.
// a catastrophic backtracking timeout) as no match rather than propagating
// it, consistent with the engine never erroring out of a validation run.
func matchString(re *regexp2.Regexp, s string) bool {
	if re == nil {
		return false
	}
	ok, err := re.MatchString(s)
	return err == nil && ok
}
