package path

// Visibility of segments during normalization. A segment is invisible
// if it will be elided from the normalized output: "." always, ".."
// when it cancels against an earlier normal segment or falls off an
// absolute root, and a normal segment when a later ".." cancels it.
//
// The predicates below rescan the joined stream on every query instead
// of keeping a stack of pending segments. This is quadratic in the
// worst case, which is fine for path-sized inputs and keeps the
// look-ahead and look-behind rules independently auditable.

// segmentBackWillBeRemoved reports whether a ".." segment of a
// relative path cancels against an earlier normal segment. The walk
// runs backward from the segment; every normal segment seen raises the
// counter, every ".." lowers it. The moment the counter turns positive
// there is an unconsumed normal segment for this ".." to cancel.
func segmentBackWillBeRemoved(sj segmentJoined) bool {
	counter := 0
	for sj.previous() {
		switch sj.segment.Type() {
		case SegmentNormal:
			counter++
			if counter > 0 {
				return true
			}
		case SegmentBack:
			counter--
		}
	}
	return false
}

// segmentNormalWillBeRemoved reports whether a normal segment is
// cancelled by a later "..". The walk runs forward from the segment;
// normal segments raise the counter, ".." segments lower it. The
// moment the counter turns negative, a ".." has reached back far
// enough to consume this segment.
func segmentNormalWillBeRemoved(sj segmentJoined) bool {
	counter := 0
	for sj.next() {
		switch sj.segment.Type() {
		case SegmentNormal:
			counter++
		case SegmentBack:
			counter--
			if counter < 0 {
				return true
			}
		}
	}
	return false
}

func segmentWillBeRemoved(sj segmentJoined, absolute bool) bool {
	switch sj.segment.Type() {
	case SegmentCurrent:
		return true
	case SegmentBack:
		if absolute {
			// There is nothing above the root of an
			// absolute path to navigate to.
			return true
		}
		return segmentBackWillBeRemoved(sj)
	default:
		return segmentNormalWillBeRemoved(sj)
	}
}

// skipInvisible advances the iterator until it rests on a segment that
// survives normalization. It returns false if the stream ends first.
func (sj *segmentJoined) skipInvisible(absolute bool) bool {
	for segmentWillBeRemoved(*sj, absolute) {
		if !sj.next() {
			return false
		}
	}
	return true
}
