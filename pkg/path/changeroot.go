package path

// ChangeRoot replaces the root of p with newRoot verbatim and writes
// the result into buffer. No renormalization happens: the new root is
// not validated against the style's root grammar, and the remainder of
// the path is carried over unchanged. The tail is written before the
// new root so that buffer and source may alias.
func (s Style) ChangeRoot(p, newRoot string, buffer []byte) int {
	s.check()

	rootLength := s.GetRoot(p)
	tail := p[rootLength:]

	outputSized(buffer, len(newRoot), tail)
	outputSized(buffer, 0, newRoot)

	newPathSize := len(tail) + len(newRoot)
	terminateOutput(buffer, newPathSize)
	return newPathSize
}
