package common

import (
	"path/filepath"
	"strings"
	"unicode"
)

// IsValidIdentifier returns whether or not s is a valid NanoMorpho name: a
// letter or underscore followed by letters, digits, and underscores.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, c := range s {
		if unicode.IsLetter(c) || c == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(c) {
			continue
		}

		return false
	}

	return true
}

// ProgramName derives the program name used in the module header from a
// source path: the base name with its extension trimmed off.
func ProgramName(path string) string {
	base := filepath.Base(path)
	if ndx := strings.Index(base, "."); ndx > 0 {
		return base[:ndx]
	}

	return base
}
