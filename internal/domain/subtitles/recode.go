package subtitles

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NormalizeUTF8 rewrites the subtitle file at path as BOM-less UTF-8,
// detecting the source encoding from the content. A file that is already
// clean UTF-8 is left byte-identical on disk. Returns whether the file was
// rewritten.
func NormalizeUTF8(path string) (changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read subtitle: %w", err)
	}
	if utf8.Valid(data) && !bytes.HasPrefix(data, utf8BOM) {
		return false, nil
	}

	enc, _, _ := charset.DetermineEncoding(data, "text/plain")
	dec := unicode.BOMOverride(enc.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return false, fmt.Errorf("decode subtitle: %w", err)
	}

	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, out, mode); err != nil {
		return false, fmt.Errorf("rewrite subtitle: %w", err)
	}
	return true, nil
}
