package path

// GetBasename returns the text of the last segment of p, or the empty
// string if p has no segments. Trailing separators behind the basename
// are not part of it.
func (s Style) GetBasename(p string) string {
	s.check()
	seg, ok := s.LastSegment(p)
	if !ok {
		return ""
	}
	return seg.String()
}

// GetDirname returns the prefix of p up to the beginning of its last
// segment, including the separator in front of the basename
// ("/var/log/messages" yields "/var/log/"). A path without segments
// has an empty dirname.
func (s Style) GetDirname(p string) string {
	s.check()
	seg, ok := s.LastSegment(p)
	if !ok {
		return ""
	}
	return p[:seg.begin]
}

// ChangeBasename replaces the last segment of p with newBasename and
// writes the result into buffer. Separators around newBasename are
// trimmed before splicing. If p consists of nothing but a root, the
// new basename is appended behind it.
func (s Style) ChangeBasename(p, newBasename string, buffer []byte) int {
	s.check()
	seg, ok := s.LastSegment(p)
	if !ok {
		rootLength := s.GetRoot(p)
		pos := outputSized(buffer, 0, p[:rootLength])
		pos += outputSized(buffer, pos, s.trimSeparators(newBasename))
		terminateOutput(buffer, pos)
		return pos
	}
	return s.changeSegment(seg, newBasename, buffer)
}

// changeSegment splices value over one segment of its path. The tail
// behind the segment is written before the value: buffer and source
// may alias, and writing the value first would clobber a tail it still
// has to read when the value is longer than the segment it replaces.
func (s Style) changeSegment(seg Segment, value string, buffer []byte) int {
	pos := outputSized(buffer, 0, seg.path[:seg.begin])
	value = s.trimSeparators(value)

	tail := seg.path[seg.end:]
	outputSized(buffer, pos+len(value), tail)
	pos += outputSized(buffer, pos, value)

	pos += len(tail)
	terminateOutput(buffer, pos)
	return pos
}
