package path

// Join joins path b onto path a and normalizes the result into buffer,
// returning the unbounded result length. Superfluous "." and ".."
// segments are elided across the fragment boundary, so joining
// "hello/there" and "../world" yields "hello/world".
func (s Style) Join(a, b string, buffer []byte) int {
	s.check()
	return s.joinAndNormalize([]string{a, b}, buffer)
}

// JoinMultiple joins any number of path fragments in order and
// normalizes the result into buffer. The root is taken from the first
// fragment only; later fragments contribute nothing but segments.
func (s Style) JoinMultiple(paths []string, buffer []byte) int {
	s.check()
	return s.joinAndNormalize(paths, buffer)
}

// Normalize resolves "." and ".." segments of p, collapses separator
// runs, and writes the result into buffer. Normalization is a join
// with a single input.
func (s Style) Normalize(p string, buffer []byte) int {
	s.check()
	return s.joinAndNormalize([]string{p}, buffer)
}

// JoinString, like Join, but allocating the exactly sized result.
func (s Style) JoinString(a, b string) string {
	return buildString(func(buffer []byte) int {
		return s.Join(a, b, buffer)
	})
}

// NormalizeString, like Normalize, but allocating the exactly sized
// result.
func (s Style) NormalizeString(p string) string {
	return buildString(func(buffer []byte) int {
		return s.Normalize(p, buffer)
	})
}

func (s Style) joinAndNormalize(paths []string, buffer []byte) int {
	if len(paths) == 0 {
		terminateOutput(buffer, 0)
		return 0
	}

	// The root is passed through untouched; elision only ever
	// applies to segments. Absoluteness is computed once here and
	// governs every ".." decision in the stream.
	pos := s.GetRoot(paths[0])
	absolute := s.isRootAbsolute(paths[0], pos)
	outputSized(buffer, 0, paths[0][:pos])

	sj, ok := s.firstSegmentJoined(paths)
	if !ok {
		terminateOutput(buffer, pos)
		return pos
	}

	hasSegmentOutput := false
	for {
		if !segmentWillBeRemoved(sj, absolute) {
			// The separator goes in front of every segment
			// but the first, so the output never ends in a
			// separator that the root did not contribute.
			if hasSegmentOutput {
				pos += s.outputSeparator(buffer, pos)
			}
			hasSegmentOutput = true
			pos += outputSized(buffer, pos, sj.segment.String())
		}
		if !sj.next() {
			break
		}
	}

	if !hasSegmentOutput && pos == 0 {
		// Every segment of a rootless path was elided. An empty
		// result would stop meaning "the current directory", so
		// emit "." explicitly.
		pos += outputCurrent(buffer, pos)
	}

	terminateOutput(buffer, pos)
	return pos
}
