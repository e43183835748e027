package path

// segmentJoined iterates over the segments of an ordered list of path
// fragments as if they were one concatenated path, without ever
// materializing that concatenation. The root is recognized only in the
// first fragment; the entire text of every later fragment is
// segment-bearing.
type segmentJoined struct {
	style     Style
	paths     []string
	pathIndex int
	segment   Segment
}

// firstSegmentJoined positions a joined iterator on the first fragment
// that yields a segment, skipping fragments that consist of nothing
// but a root or separators. The second return value is false if no
// fragment has a segment.
func (s Style) firstSegmentJoined(paths []string) (segmentJoined, bool) {
	sj := segmentJoined{style: s, paths: paths}
	for sj.pathIndex < len(paths) {
		if seg, ok := s.FirstSegment(paths[sj.pathIndex]); ok {
			sj.segment = seg
			return sj, true
		}
		sj.pathIndex++
	}
	return sj, false
}

// next advances to the following segment, crossing fragment boundaries
// as needed.
func (sj *segmentJoined) next() bool {
	if sj.pathIndex >= len(sj.paths) {
		return false
	}
	if seg, ok := sj.segment.Next(); ok {
		sj.segment = seg
		return true
	}
	for {
		sj.pathIndex++
		if sj.pathIndex >= len(sj.paths) {
			return false
		}
		// Fragments after the one the iteration started on do
		// not have their root stripped: "c:\a" joined behind
		// another path contributes the segments "c:" and "a".
		if seg, ok := sj.style.firstSegmentFrom(sj.paths[sj.pathIndex], 0); ok {
			sj.segment = seg
			return true
		}
	}
}

// previous moves to the preceding segment, re-entering earlier
// fragments from their last segment. Only fragment 0 has its root
// honored as an iteration boundary.
func (sj *segmentJoined) previous() bool {
	if len(sj.paths) == 0 {
		return false
	}
	if seg, ok := sj.segment.Previous(); ok {
		sj.segment = seg
		return true
	}
	for {
		if sj.pathIndex == 0 {
			return false
		}
		sj.pathIndex--

		var seg Segment
		var ok bool
		if sj.pathIndex == 0 {
			seg, ok = sj.style.LastSegment(sj.paths[0])
		} else {
			seg, ok = sj.style.lastSegmentFrom(sj.paths[sj.pathIndex], 0)
		}
		if ok {
			sj.segment = seg
			return true
		}
	}
}
