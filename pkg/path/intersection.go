package path

// GetIntersection returns the number of leading bytes of base that
// base and p have in common, measured in whole visible segments. The
// returned length always ends on a segment boundary of base, never in
// the middle of a segment. If the roots of the two paths differ the
// intersection is empty and 0 is returned; if the paths diverge on
// their first segment, the length of the shared root is returned.
func (s Style) GetIntersection(base, p string) int {
	s.check()

	baseRootLength := s.GetRoot(base)
	otherRootLength := s.GetRoot(p)
	if baseRootLength != otherRootLength ||
		!s.stringsEqual(base[:baseRootLength], p[:otherRootLength]) {
		return 0
	}

	bsj, baseOK := s.firstSegmentJoined([]string{base})
	osj, otherOK := s.firstSegmentJoined([]string{p})
	if !baseOK || !otherOK {
		return baseRootLength
	}

	absolute := s.isRootAbsolute(base, baseRootLength)

	// end tracks the offset behind the last segment of base that
	// both paths share.
	end := baseRootLength
	for {
		if !bsj.skipInvisible(absolute) || !osj.skipInvisible(absolute) {
			break
		}
		if !s.segmentsEqual(bsj.segment, osj.segment) {
			return end
		}
		end = bsj.segment.End()
		if !bsj.next() || !osj.next() {
			break
		}
	}
	return end
}
