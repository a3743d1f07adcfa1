// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loqui-im/loqui/pkg/suggest"
)

/*
TestSplitBy verifies suffix expansion for a single separator.
*/
func TestSplitBy(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		splitStr string
		want     []string
	}{
		{
			"dotted_term",
			"one.two.three", ".",
			[]string{"one.two.three", ".two.three", "two.three", ".three", "three"},
		},
		{
			"no_separator_present",
			"plain", ".",
			[]string{"plain"},
		},
		{
			"trailing_separator",
			"build_", "_",
			[]string{"build_", "_", ""},
		},
		{
			"leading_separator",
			"-ops", "-",
			[]string{"-ops", "-ops", "ops"},
		},
		{
			"space_separator_plain_suffixes_only",
			"town square", " ",
			[]string{"town square", "square"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggest.SplitBy(tt.term, tt.splitStr))
		})
	}
}

/*
TestSplitByMultiple verifies the merged, order-preserving expansion across
several separators.
*/
func TestSplitByMultiple(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		splitStrs []string
		want      []string
	}{
		{
			"mixed_separators",
			"one.two-three", []string{".", "-"},
			[]string{"one.two-three", ".two-three", "two-three", "-three", "three"},
		},
		{
			"all_autocomplete_separators",
			"jane.doe-ops", suggest.SplitChars,
			[]string{"jane.doe-ops", ".doe-ops", "doe-ops", "-ops", "ops"},
		},
		{
			"duplicate_suffixes_collapsed",
			"a.b.b", []string{"."},
			[]string{"a.b.b", ".b.b", "b.b", ".b", "b"},
		},
		{
			"no_separator_present",
			"plain", suggest.SplitChars,
			[]string{"plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggest.SplitByMultiple(tt.term, tt.splitStrs))
		})
	}
}

/*
TestSplitByMultiple_FreshSlice ensures every call returns an independent slice.
*/
func TestSplitByMultiple_FreshSlice(t *testing.T) {
	first := suggest.SplitByMultiple("one.two", suggest.SplitChars)
	first[0] = "mutated"

	second := suggest.SplitByMultiple("one.two", suggest.SplitChars)
	assert.Equal(t, "one.two", second[0])
}
