// Package naming holds the filename slug rules and the output naming
// contract. Downstream tooling matches outputs by the exact
// "_subtitled_en_us" suffix, so the functions here must stay deterministic.
package naming

import "strings"

// OutputSuffix is appended (before the extension) to every generated video.
const OutputSuffix = "_subtitled_en_us"

// Normalize lowercases s and collapses every maximal run of characters
// outside [a-z0-9] into a single hyphen, trimming leading and trailing
// hyphens. It is total and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// Base strips the extension from a file name (not a path) and returns the
// remainder. "My Clip.mp4" -> "My Clip". Names without a dot pass through.
func Base(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// OutputName derives the output video name for an input file name:
// Normalize(base) + OutputSuffix + ".mp4". The result never collides with
// the input name because of the suffix, so inputs are never overwritten.
func OutputName(inputName string) string {
	slug := Normalize(Base(inputName))
	if slug == "" {
		slug = "video"
	}
	return slug + OutputSuffix + ".mp4"
}
