package path

// ScopeWalker is an interface that is called into by Walk. An
// implementation can use it to observe the structure of a path without
// materializing any derived string. ScopeWalker is called into exactly
// once per path, right before the first segment (if any) is processed.
//
// The root is the raw root prefix of the path, which is empty for
// rootless paths. The absolute flag follows the root absoluteness
// rule: it is true exactly when the root ends in a separator.
type ScopeWalker interface {
	OnScope(root string, absolute bool) (SegmentWalker, error)
}

// SegmentWalker is an interface that is called into by Walk after the
// scope of the path has been determined. It is called into once for
// every segment, in order and before any elision: a later ".." does
// not suppress the OnNormal call of the segment it cancels.
//
// Each method invalidates the walker it is called on; further calls
// must be directed against the returned SegmentWalker.
type SegmentWalker interface {
	// OnNormal is called for every segment that is not "." or "..".
	OnNormal(name string) (SegmentWalker, error)

	// OnCurrent is called for every "." segment.
	OnCurrent() (SegmentWalker, error)

	// OnUp is called for every ".." segment.
	OnUp() (SegmentWalker, error)
}

// Walk parses p under the style and feeds its root and segments to the
// walker. Processing stops at the first error returned by the walker,
// which is passed through unchanged.
func (s Style) Walk(p string, scopeWalker ScopeWalker) error {
	s.check()

	rootLength := s.GetRoot(p)
	segmentWalker, err := scopeWalker.OnScope(p[:rootLength], s.isRootAbsolute(p, rootLength))
	if err != nil {
		return err
	}

	seg, ok := s.FirstSegment(p)
	for ok {
		switch seg.Type() {
		case SegmentCurrent:
			segmentWalker, err = segmentWalker.OnCurrent()
		case SegmentBack:
			segmentWalker, err = segmentWalker.OnUp()
		default:
			segmentWalker, err = segmentWalker.OnNormal(seg.String())
		}
		if err != nil {
			return err
		}
		seg, ok = seg.Next()
	}
	return nil
}
