package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeHexColor validates a "#RGB" or "#RRGGBB" color and returns it in
// upper-case "#RRGGBB" form.
// Example: "#fc0" -> "#FFCC00"
func NormalizeHexColor(color string) (string, error) {
	hex, ok := strings.CutPrefix(color, "#")
	if !ok {
		return "", fmt.Errorf("color %q must start with #", color)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return "", fmt.Errorf("color %q must have 3 or 6 hex digits", color)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", fmt.Errorf("failed to parse color %q: %w", color, err)
	}
	return "#" + strings.ToUpper(hex), nil
}

// HighlightCalloutType maps a highlight style and normalized color to an
// Obsidian callout type. Default return is "quote".
func HighlightCalloutType(style, color string) string {
	switch style {
	case "note_only":
		return "note"
	case "strikethrough":
		return "warning"
	}

	colorMapping := map[string]string{
		"#FFFF00": "quote",   // Yellow highlights -> quotes
		"#00FF00": "success", // Green highlights -> success
		"#FF0000": "danger",  // Red highlights -> danger
		"#0000FF": "info",    // Blue highlights -> info
		"#FF00FF": "tip",     // Magenta highlights -> tips
	}

	if calloutType, ok := colorMapping[color]; ok {
		return calloutType
	}
	return "quote"
}
