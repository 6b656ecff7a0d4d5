package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomColor(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, RandomColor())
	}
}

func TestContrastTextColor(t *testing.T) {
	tests := []struct {
		background string
		want       string
	}{
		{"#ffffff", "#000000"},
		{"#000000", "#ffffff"},
		{"#ffff00", "#000000"}, // yellow reads better with black
		{"#0000ff", "#ffffff"}, // blue reads better with white
		{"not-a-color", "#ffffff"},
		{"#zzzzzz", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.background, func(t *testing.T) {
			assert.Equal(t, tt.want, ContrastTextColor(tt.background))
		})
	}
}
