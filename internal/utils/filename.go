package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// Whitespace runs, including newlines and tabs
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes a book name or translation tag safe to use as a
// file name inside an Obsidian vault. Characters invalid on common
// filesystems are dropped, whitespace is collapsed and brackets become
// parentheses so the name never reads as a wiki link.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, "")
	filename = whitespaceRuns.ReplaceAllString(filename, " ")
	filename = strings.TrimSpace(filename)

	filename = strings.ReplaceAll(filename, "#", "")
	filename = strings.ReplaceAll(filename, "[", "(")
	filename = strings.ReplaceAll(filename, "]", ")")

	// Leave room for an extension
	if len(filename) > 200 {
		filename = strings.TrimSpace(filename[:200])
	}

	if filename == "" {
		filename = "Untitled"
	}
	return filename
}
