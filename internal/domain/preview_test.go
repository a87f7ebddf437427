package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromSlug(t *testing.T) {
	cases := []struct {
		name     string
		slug     string
		expected string
	}{
		{
			name:     "single_word",
			slug:     "dns",
			expected: "Dns",
		},
		{
			name:     "two_words",
			slug:     "network-protocols",
			expected: "Network Protocols",
		},
		{
			name:     "mixed_case_normalised",
			slug:     "tcp-An-OVERVIEW",
			expected: "Tcp An Overview",
		},
		{
			name:     "empty_slug",
			slug:     "",
			expected: "",
		},
		{
			name:     "consecutive_hyphens_preserve_spacing",
			slug:     "http--basics",
			expected: "Http  Basics",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TitleFromSlug(tc.slug))
		})
	}
}
