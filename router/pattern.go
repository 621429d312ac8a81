package router

import (
	"regexp"
	"sync"
)

// placeholderSegment matches a "/{name}" placeholder segment in a route
// pattern. The name is discarded during compilation: parameters are
// positional, so "/{id}" and "/{slug}" compile to the same rule.
var placeholderSegment = regexp.MustCompile(`/\{[^/{}]+\}`)

// patternCache caches compiled rules by the original pattern string.
// The number of distinct patterns is bounded by the number of registered
// routes, so the cache grows to a fixed size and stays there.
var patternCache sync.Map

// compilePattern returns the compiled matching rule for a route pattern,
// compiling and caching it on first use.
//
// Placeholder segments become capture groups spanning one or more
// characters. All remaining pattern text is kept as regular-expression
// text, so routes may also use inline expressions such as "/blog(/\d+)?".
// The rule is anchored at both ends: a pattern never matches a prefix of
// a longer path.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if v, ok := patternCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}

	expr := "^" + placeholderSegment.ReplaceAllString(pattern, "/(.+)") + "$"

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	actual, _ := patternCache.LoadOrStore(pattern, re)

	return actual.(*regexp.Regexp), nil
}
