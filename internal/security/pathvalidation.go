// Package security holds path and filename hygiene helpers for the bundle
// writers: sanitizing identifiers that end up in download filenames and
// guarding archive extraction against traversal.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateArchiveMemberPath checks that an archive member name, joined under
// destDir, stays inside destDir. Rejects absolute names and any .. escape.
func ValidateArchiveMemberPath(name, destDir string) error {
	if name == "" {
		return fmt.Errorf("empty archive member name")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("absolute archive member name: %s", name)
	}
	dest := filepath.Clean(destDir)
	target := filepath.Join(dest, name)
	rel, err := filepath.Rel(dest, target)
	if err != nil {
		return fmt.Errorf("archive member outside destination: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("archive member %s escapes %s", name, destDir)
	}
	return nil
}

// SanitizeFilename makes a safe filename component from an arbitrary string.
// Characters outside ASCII letters, digits, dot, underscore and dash become
// underscores, runs of underscores collapse, and the result is length-capped.
// Used when embedding design and palette keys into download filenames.
func SanitizeFilename(s string) string {
	if s == "" {
		return "unknown"
	}
	const maxLen = 128
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		if b.Len() >= maxLen {
			break
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "unknown"
	}
	return out
}
