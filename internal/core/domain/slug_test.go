package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ça va? Élection 2024!": "ca-va-election-2024",
		"  Hello,   World  ":    "hello-world",
		"Budget -- 2025 / Q1":   "budget-2025-q1",
		"naïve café":            "naive-cafe",
		"!!!":                   "",
		"already-a-slug":        "already-a-slug",
		"Москва news":           "news",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}
