package path

import (
	"strings"
)

// GetExtension returns the extension of the last segment of p,
// including its leading dot. The search runs from the end of the
// segment backward, so the match is the last dot: the extension of
// "archive.tar.gz" is ".gz". The second return value is false if p has
// no segments or its last segment contains no dot.
func (s Style) GetExtension(p string) (string, bool) {
	s.check()
	seg, ok := s.LastSegment(p)
	if !ok {
		return "", false
	}
	for c := seg.end - 1; c >= seg.begin; c-- {
		if seg.path[c] == '.' {
			return seg.path[c:seg.end], true
		}
	}
	return "", false
}

// HasExtension reports whether the last segment of p has an extension.
func (s Style) HasExtension(p string) bool {
	_, ok := s.GetExtension(p)
	return ok
}

// ChangeExtension replaces the extension of the last segment of p with
// newExtension and writes the result into buffer. Exactly one dot is
// emitted in front of the extension whether or not newExtension
// carries its own; further dots inside newExtension are kept verbatim.
// If p consists of nothing but a root, the extension is appended as
// the only content behind it.
func (s Style) ChangeExtension(p, newExtension string, buffer []byte) int {
	s.check()
	seg, ok := s.LastSegment(p)
	if !ok {
		rootLength := s.GetRoot(p)
		pos := outputSized(buffer, 0, p[:rootLength])
		if !strings.HasPrefix(newExtension, ".") {
			pos += outputDot(buffer, pos)
		}
		pos += outputSized(buffer, pos, newExtension)
		terminateOutput(buffer, pos)
		return pos
	}

	// Find the old extension within the segment. Without one, the
	// new extension is inserted at the segment's end.
	oldExtension := seg.end
	for c := seg.begin; c < seg.end; c++ {
		if seg.path[c] == '.' {
			oldExtension = c
		}
	}

	pos := outputSized(buffer, 0, seg.path[:oldExtension])

	if strings.HasPrefix(newExtension, ".") {
		newExtension = newExtension[1:]
	}

	// The tail behind the segment goes out before the dot and the
	// extension; with an aliasing buffer a longer extension would
	// otherwise overwrite it.
	newExtensionSize := len(newExtension) + 1
	trailSize := outputSized(buffer, pos+newExtensionSize, seg.path[seg.end:])

	pos += outputDot(buffer, pos)
	pos += outputSized(buffer, pos, newExtension)

	pos += trailSize
	terminateOutput(buffer, pos)
	return pos
}
