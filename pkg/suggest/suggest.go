// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

/*
Package suggest generates candidate search strings from a typed term.

When a user types "first.last" into the directory search box, the term should
also match entries indexed under "last". This package expands a term into the
ordered list of suffixes obtained by treating every occurrence of a separator
character as a suggestion boundary.
*/
package suggest

import "strings"

// SplitChars are the separator characters used when expanding directory
// autocomplete terms (usernames like "jane.doe-ops" or "build_bot").
var SplitChars = []string{".", "-", "_"}

// SplitBy expands term into suffix suggestions at every occurrence of splitStr.
//
// The full term always comes first. Each separator occurrence then contributes
// two entries, in left-to-right order: the suffix including the separator and
// the suffix immediately after it.
//
// # Example
//
//	SplitBy("one.two.three", ".")
//	// ["one.two.three", ".two.three", "two.three", ".three", "three"]
//
// The space separator is special-cased: it contributes only the plain
// suffixes, since a leading space is never a useful search prefix.
func SplitBy(term, splitStr string) []string {
	parts := strings.Split(term, splitStr)

	suggestions := make([]string, 0, 2*len(parts)-1)
	for i := range parts {
		suffix := strings.Join(parts[i:], splitStr)
		if i > 0 && splitStr != " " {
			suggestions = append(suggestions, splitStr+suffix)
		}
		suggestions = append(suggestions, suffix)
	}

	return suggestions
}

// SplitByMultiple applies [SplitBy] for each separator in splitStrs, in the
// given order, and merges the results preserving first-occurrence order.
//
// # Example
//
//	SplitByMultiple("one.two-three", []string{".", "-"})
//	// ["one.two-three", ".two-three", "two-three", "-three", "three"]
//
// The returned slice is freshly allocated on every call.
func SplitByMultiple(term string, splitStrs []string) []string {
	seen := make(map[string]struct{})
	var suggestions []string

	for _, splitStr := range splitStrs {
		for _, suggestion := range SplitBy(term, splitStr) {
			if _, duplicate := seen[suggestion]; duplicate {
				continue
			}
			seen[suggestion] = struct{}{}
			suggestions = append(suggestions, suggestion)
		}
	}

	return suggestions
}
