// Package subtitles owns the subtitle-side domain logic: finding the
// transcription artifact that belongs to a video, and normalizing its text
// encoding before it is handed to the burn-in step.
package subtitles

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BurnableExtensions are the subtitle formats the ffmpeg subtitles filter
// accepts, in preference order.
var BurnableExtensions = []string{".srt", ".vtt"}

// Locate finds the subtitle file for a video with the given base name using
// the two-pass strategy: first a case-insensitive substring match against the
// original base name, then against the normalized slug. Candidates are
// scanned in sorted filename order so the tie-break is reproducible across
// filesystems; among matches an .srt wins over a .vtt.
//
// Returns the full path of the match, or ok=false when neither pass finds one.
func Locate(dir, base, slug string) (path string, ok bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, needle := range []string{base, slug} {
		if needle == "" {
			continue
		}
		if name, found := match(names, needle); found {
			return filepath.Join(dir, name), true
		}
	}
	return "", false
}

func match(sorted []string, needle string) (string, bool) {
	lower := strings.ToLower(needle)
	for _, ext := range BurnableExtensions {
		for _, name := range sorted {
			if !strings.EqualFold(filepath.Ext(name), ext) {
				continue
			}
			if strings.Contains(strings.ToLower(name), lower) {
				return name, true
			}
		}
	}
	return "", false
}
