// Package path implements a style-parameterized path algebra. Paths
// are treated as plain strings; no file system access takes place.
// Every operation is a method on an immutable Style value, so the same
// code can process Windows and Unix pathname strings side by side.
package path

import (
	"strings"
)

// Style describes the grammar of a family of pathname strings: which
// bytes act as separators, how the root of a path is written down, and
// whether comparisons are case sensitive.
//
// Style values are immutable. Use the Windows, Unix or Local variables
// instead of constructing them; operations on the zero Style panic.
type Style struct {
	name string

	// Accepted separator bytes. The first byte is the canonical
	// separator used when emitting paths.
	separators string

	caseInsensitive bool
	windowsRoots    bool
}

// Windows is the style of Windows pathname strings. Both backslashes
// and forward slashes are accepted as separators, the backslash being
// canonical on output. Roots may be drive letters ("C:", "C:\"), UNC
// prefixes ("\\server\share\") or device prefixes ("\\.\", "\\?\").
// Comparisons are case insensitive.
var Windows = Style{
	name:            "windows",
	separators:      "\\/",
	caseInsensitive: true,
	windowsRoots:    true,
}

// Unix is the style of Unix pathname strings. The forward slash is the
// only separator, a single leading slash is the only root, and
// comparisons are case sensitive.
var Unix = Style{
	name:       "unix",
	separators: "/",
}

func (s Style) String() string {
	return s.name
}

// Separator returns the canonical separator byte emitted by producing
// operations of this style.
func (s Style) Separator() byte {
	s.check()
	return s.separators[0]
}

// IsSeparator reports whether c acts as a separator under this style.
func (s Style) IsSeparator(c byte) bool {
	s.check()
	return strings.IndexByte(s.separators, c) >= 0
}

// check guards against use of the zero Style, which has no separator
// set and would silently misparse every path.
func (s Style) check() {
	if s.separators == "" {
		panic("path: use of uninitialized Style")
	}
}

func (s Style) isSeparator(c byte) bool {
	return strings.IndexByte(s.separators, c) >= 0
}

// stringsEqual compares two strings under the case rules of the style.
// Only comparison is case folded; emitted text always keeps the case
// of the input.
func (s Style) stringsEqual(a, b string) bool {
	if s.caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// trimSeparators removes leading and trailing separator bytes from a
// replacement value, so that splicing it into a path cannot introduce
// empty segments.
func (s Style) trimSeparators(v string) string {
	for v != "" && s.isSeparator(v[0]) {
		v = v[1:]
	}
	for v != "" && s.isSeparator(v[len(v)-1]) {
		v = v[:len(v)-1]
	}
	return v
}

// nextStop returns the offset of the first separator at or after i, or
// len(p) if the remainder of the path contains none.
func (s Style) nextStop(p string, i int) int {
	for i < len(p) && !s.isSeparator(p[i]) {
		i++
	}
	return i
}
