package path

// GetRelative computes the path that leads from the directory base to
// p and writes it into buffer. Both paths must have the same root:
// same length and same text under the case rules of the style. If the
// roots differ there is no relative path between them and the result
// is empty.
//
// When base and p describe the same location up to elision, the result
// is ".".
func (s Style) GetRelative(base, p string, buffer []byte) int {
	s.check()
	pos := 0

	baseRootLength := s.GetRoot(base)
	pathRootLength := s.GetRoot(p)
	if baseRootLength != pathRootLength ||
		!s.stringsEqual(base[:baseRootLength], p[:pathRootLength]) {
		terminateOutput(buffer, pos)
		return pos
	}

	absolute := s.isRootAbsolute(base, baseRootLength)

	bsj, baseAvailable := s.firstSegmentJoined([]string{base})
	osj, otherAvailable := s.firstSegmentJoined([]string{p})

	// Walk both streams in lockstep until their visible segments
	// diverge. Segments shared by both paths contribute nothing to
	// the relative path.
	for baseAvailable && otherAvailable {
		baseAvailable = bsj.skipInvisible(absolute)
		otherAvailable = osj.skipInvisible(absolute)
		if !baseAvailable || !otherAvailable {
			break
		}
		if !s.segmentsEqual(bsj.segment, osj.segment) {
			break
		}
		baseAvailable = bsj.next()
		otherAvailable = osj.next()
	}

	hasOutput := false

	// Every visible segment remaining in base is a directory to
	// climb out of.
	if baseAvailable {
		for {
			if !bsj.skipInvisible(absolute) {
				break
			}
			hasOutput = true
			pos += outputBack(buffer, pos)
			pos += s.outputSeparator(buffer, pos)
			if !bsj.next() {
				break
			}
		}
	}

	// Every visible segment remaining in p is descended into as-is.
	if otherAvailable {
		for {
			if !osj.skipInvisible(absolute) {
				break
			}
			hasOutput = true
			pos += outputSized(buffer, pos, osj.segment.String())
			pos += s.outputSeparator(buffer, pos)
			if !osj.next() {
				break
			}
		}
	}

	// Both loops above emit a trailing separator after each
	// segment; step back over the final one. If nothing was emitted
	// the paths are equal and the relative path is ".".
	if hasOutput {
		pos--
	} else {
		pos += outputCurrent(buffer, pos)
	}

	terminateOutput(buffer, pos)
	return pos
}

// GetRelativeString, like GetRelative, but allocating the exactly
// sized result.
func (s Style) GetRelativeString(base, p string) string {
	return buildString(func(buffer []byte) int {
		return s.GetRelative(base, p, buffer)
	})
}

// segmentsEqual compares the text of two segments under the case
// rules of the style. Segments of different lengths are never equal.
func (s Style) segmentsEqual(a, b Segment) bool {
	return a.size() == b.size() && s.stringsEqual(a.String(), b.String())
}
