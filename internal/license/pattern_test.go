package license

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const apacheLicense = `Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.`

func TestPattern_Matches(t *testing.T) {
	pattern := Parse([]byte(apacheLicense), nil).Pattern()

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "exact text",
			text:     apacheLicense,
			expected: true,
		},
		{
			name:     "rewrapped",
			text:     "Licensed under the Apache\nLicense, Version 2.0 (the \"License\"); you may not use\nthis file except in compliance with the License.",
			expected: true,
		},
		{
			name:     "extra spacing",
			text:     "  Licensed   under the Apache License,\t\tVersion 2.0 (the \"License\");\n\n\nyou may not use this file except in compliance with the License.  ",
			expected: true,
		},
		{
			name:     "leading noise",
			text:     "Copyright 2020 Acme\n\n" + apacheLicense,
			expected: true,
		},
		{
			name:     "last word not required",
			text:     strings.TrimSuffix(apacheLicense, " License."),
			expected: true,
		},
		{
			name:     "last word differs",
			text:     strings.TrimSuffix(apacheLicense, "License.") + "Licence.",
			expected: true,
		},
		{
			name:     "second to last word missing",
			text:     strings.TrimSuffix(apacheLicense, " the License."),
			expected: false,
		},
		{
			name:     "word changed in the middle",
			text:     strings.Replace(apacheLicense, "compliance", "accordance", 1),
			expected: false,
		},
		{
			name:     "empty",
			text:     "",
			expected: false,
		},
		{
			name:     "only whitespace",
			text:     " \n\t ",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pattern.Matches(tt.text))
		})
	}
}

func TestPattern_ResetDoesNotRetryToken(t *testing.T) {
	pattern := Pattern{Literal("a"), Literal("b"), Literal("c")}

	// The second "a" breaks the run and is consumed by the reset.
	assert.False(t, pattern.Matches("a a b"))
	assert.True(t, pattern.Matches("a x a b"))
}

func TestPattern_VariablesAreWildcards(t *testing.T) {
	tmpl := Compile([]string{"Copyright ${year} ${owner}", "All rights reserved."}, nil)

	for _, text := range []string{
		"Copyright 2015 Acme All rights reserved.",
		"Copyright 1999-2024 someone All rights reserved.",
		"Copyright ${year} ${owner} All rights reserved.",
	} {
		assert.True(t, tmpl.Matches(text), text)
	}

	assert.False(t, tmpl.Matches("Copyright 2015 All rights reserved."))
}

func TestPattern_ResolvedTextMatchesOwnPattern(t *testing.T) {
	lines := strings.Split(patternLicense, "\n")
	lines[0] = "Copyright (C) ${year} ${author}"

	for i, bindings := range []Bindings{
		nil,
		{"year": "2015"},
		{"year": "2015", "author": "Raquel"},
		{"year": "2001", "author": "Someone"},
	} {
		tmpl := Compile(lines, bindings)
		assert.True(t, tmpl.Matches(tmpl.Text()), fmt.Sprintf("bindings #%d", i))
	}
}

func TestPattern_WhitespaceInsensitive(t *testing.T) {
	pattern := Compile([]string{"one two three four"}, nil).Pattern()

	variants := []string{
		"one two three four",
		"one  two   three    four",
		"one\ntwo\nthree\nfour",
		"\tone\r\ntwo three\n\nfour\n",
	}

	for _, v := range variants {
		assert.True(t, pattern.Matches(v), "%q", v)
	}
}

func TestPattern_SingleWord(t *testing.T) {
	pattern := Pattern{Literal("MIT")}

	assert.True(t, pattern.Matches("MIT"))
	assert.True(t, pattern.Matches("anything"))
	assert.False(t, pattern.Matches(""))
}

func TestPattern_Empty(t *testing.T) {
	assert.False(t, Pattern(nil).Matches("anything"))
}

func ExamplePattern_Matches() {
	tmpl := Compile([]string{"Copyright ${year} Acme Corp.", "All rights reserved."}, Bindings{"year": "2024"})

	fmt.Println(tmpl.Text())
	fmt.Println(tmpl.Matches("Copyright 2019 Acme Corp. All rights reserved."))
	fmt.Println(tmpl.Matches("Copyright 2019 Other Corp. All rights reserved."))
	// Output:
	//  Copyright 2024 Acme Corp.
	//  All rights reserved.
	// true
	// false
}
