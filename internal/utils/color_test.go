package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHexColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "six digits lower case", input: "#ffcc00", expected: "#FFCC00"},
		{name: "three digits expand", input: "#fc0", expected: "#FFCC00"},
		{name: "already normalized", input: "#0000FF", expected: "#0000FF"},
		{name: "missing hash", input: "ffcc00", wantErr: true},
		{name: "color name", input: "yellow", wantErr: true},
		{name: "wrong length", input: "#ffcc", wantErr: true},
		{name: "alpha channel", input: "#FFFFCC00", wantErr: true},
		{name: "not hex", input: "#ggcc00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeHexColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHighlightCalloutType(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		color    string
		expected string
	}{
		{name: "yellow highlight", style: "highlight", color: "#FFFF00", expected: "quote"},
		{name: "green highlight", style: "highlight", color: "#00FF00", expected: "success"},
		{name: "red underline", style: "underline", color: "#FF0000", expected: "danger"},
		{name: "blue highlight", style: "highlight", color: "#0000FF", expected: "info"},
		{name: "magenta highlight", style: "highlight", color: "#FF00FF", expected: "tip"},
		{name: "unknown color", style: "highlight", color: "#123456", expected: "quote"},
		{name: "no color", style: "", color: "", expected: "quote"},
		{name: "note only wins over color", style: "note_only", color: "#0000FF", expected: "note"},
		{name: "strikethrough", style: "strikethrough", color: "", expected: "warning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HighlightCalloutType(tt.style, tt.color))
		})
	}
}
