package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain text untouched",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "Script tag escaped",
			input:    "<script>alert(1)</script>",
			expected: "&lt;script&gt;alert(1)&lt;/script&gt;",
		},
		{
			name:     "Event handler markup escaped",
			input:    `<img src=x onerror="alert(1)">`,
			expected: "&lt;img src=x onerror=&quot;alert(1)&quot;&gt;",
		},
		{
			name:     "Single quotes escaped",
			input:    "it's fine",
			expected: "it&#39;s fine",
		},
		{
			name:     "Ampersand preserved",
			input:    "fish & chips",
			expected: "fish & chips",
		},
		{
			name:     "Already-escaped entities preserved",
			input:    "&lt;script&gt;",
			expected: "&lt;script&gt;",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeText(tc.input))
		})
	}
}

// Sanitizing twice must equal sanitizing once: the same text can flow
// through the transform more than once.
func TestSanitizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"hello",
		"<script>alert('XSS')</script>",
		`<a href="javascript:alert(1)">click</a>`,
		"1 < 2 && 3 > 2",
	}

	for _, input := range inputs {
		once := SanitizeText(input)
		twice := SanitizeText(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}
