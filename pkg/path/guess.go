package path

import (
	"strings"
)

// GuessStyle guesses which style a path string was most likely written
// in. The heuristic is inherently ambiguous for separator-less names;
// its tie-break order is fixed and documented by the cases below:
//
//   - A Windows root longer than one byte ("C:", "\\server\...")
//     can only be Windows.
//   - Otherwise the first separator decides: "/" guesses Unix,
//     "\" guesses Windows.
//   - A path without separators that starts with a dot is a hidden
//     file in the Unix world and guesses Unix.
//   - A remaining name containing a dot looks like a file name with
//     an extension, which is more common on Windows.
//   - Everything else, including the empty path, defaults to Unix.
func GuessStyle(p string) Style {
	// Only Windows roots can be longer than a single separator.
	// The Windows style accepts forward slashes too, so this also
	// classifies "//server/share" prefixes.
	if Windows.GetRoot(p) > 1 {
		return Windows
	}

	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '/':
			return Unix
		case '\\':
			return Windows
		}
	}

	// No separators at all: the whole path is at most one segment,
	// so the choice of style for iteration does not matter.
	seg, ok := Unix.LastSegment(p)
	if !ok {
		return Unix
	}
	if p[seg.begin] == '.' {
		return Unix
	}
	if strings.Contains(seg.String(), ".") {
		return Windows
	}
	return Unix
}
