package router

import (
	"regexp"
	"strings"
)

// Param is a single positional path parameter extracted from a matched
// pattern. Present is false when the capture group did not take part in
// the match, which happens with optional groups such as "/blog(/{id})?".
type Param struct {
	Value   string
	Present bool
}

// MatchResult reports the outcome of matching a pattern against a path.
// Params holds one entry per capture group in the pattern, in
// left-to-right order. A fresh result is produced per match attempt.
type MatchResult struct {
	Matched bool
	Params  []Param
}

// MatchPattern compiles pattern and matches it against path. A pattern
// that fails to compile matches nothing.
func MatchPattern(pattern, path string) MatchResult {
	re, err := compilePattern(pattern)
	if err != nil {
		return MatchResult{}
	}
	return matchPath(re, path)
}

// matchPath runs a compiled rule against path and slices the positional
// parameters out of the original path using capture-group offsets.
//
// A parameter's value runs from its group's start offset to the start
// offset of the next participating group when that falls inside the
// group's own span, as with groups nested by an optional-segment
// pattern. Otherwise the group's own captured span is kept. The
// surrounding slashes are trimmed away in either case.
func matchPath(re *regexp.Regexp, path string) MatchResult {
	idx := re.FindStringSubmatchIndex(path)
	if idx == nil {
		return MatchResult{}
	}

	n := len(idx)/2 - 1
	if n == 0 {
		return MatchResult{Matched: true}
	}

	params := make([]Param, n)

	for i := 1; i <= n; i++ {
		start, end := idx[2*i], idx[2*i+1]
		if start < 0 {
			// Optional group that did not participate in the match.
			continue
		}

		if i < n {
			if next := idx[2*(i+1)]; next >= start && next < end {
				end = next
			}
		}

		params[i-1] = Param{Value: strings.Trim(path[start:end], "/"), Present: true}
	}

	return MatchResult{Matched: true, Params: params}
}
