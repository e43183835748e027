package path

// SegmentType classifies the text of a single segment.
type SegmentType int

const (
	// SegmentNormal is any segment that is not "." or "..".
	SegmentNormal SegmentType = iota
	// SegmentCurrent is a "." segment.
	SegmentCurrent
	// SegmentBack is a ".." segment.
	SegmentBack
)

// Segment is one component of a path string: a maximal substring
// between two separators, between the root and a separator, or between
// a separator and the end of the string. A Segment never contains a
// separator.
//
// Segments are values. Next and Previous return fresh segments and
// leave the receiver untouched, so an iteration can be forked at any
// point.
type Segment struct {
	style Style
	path  string

	// Offset at which the segment-bearing part of the path starts.
	// Backward iteration never moves before this boundary.
	segmentsStart int

	begin, end int
}

// String returns the text of the segment.
func (seg Segment) String() string {
	return seg.path[seg.begin:seg.end]
}

// Begin returns the offset of the segment within the path string it
// was parsed from.
func (seg Segment) Begin() int {
	return seg.begin
}

// End returns the offset one past the last byte of the segment.
func (seg Segment) End() int {
	return seg.end
}

// Type classifies the segment by exact comparison of its text. Case
// folding never applies here: on every style, only the literal texts
// "." and ".." navigate.
func (seg Segment) Type() SegmentType {
	switch seg.path[seg.begin:seg.end] {
	case ".":
		return SegmentCurrent
	case "..":
		return SegmentBack
	}
	return SegmentNormal
}

func (seg Segment) size() int {
	return seg.end - seg.begin
}

// FirstSegment returns the first segment of p, skipping the root. The
// second return value is false if p has no segments at all, in which
// case the returned Segment must not be used.
func (s Style) FirstSegment(p string) (Segment, bool) {
	s.check()
	return s.firstSegmentFrom(p, s.GetRoot(p))
}

// firstSegmentFrom finds the first segment at or after offset start.
// The returned segment remembers start as its backward iteration
// boundary.
func (s Style) firstSegmentFrom(p string, start int) (Segment, bool) {
	i := start
	for i < len(p) && s.isSeparator(p[i]) {
		i++
	}
	if i >= len(p) {
		return Segment{}, false
	}
	return Segment{
		style:         s,
		path:          p,
		segmentsStart: start,
		begin:         i,
		end:           s.nextStop(p, i),
	}, true
}

// LastSegment returns the last segment of p, or false if p has none.
func (s Style) LastSegment(p string) (Segment, bool) {
	return s.lastSegmentFrom(p, s.GetRoot(p))
}

func (s Style) lastSegmentFrom(p string, start int) (Segment, bool) {
	seg, ok := s.firstSegmentFrom(p, start)
	if !ok {
		return Segment{}, false
	}
	for {
		next, ok := seg.Next()
		if !ok {
			return seg, true
		}
		seg = next
	}
}

// Next returns the segment following the receiver, or false if the
// receiver is the last segment of its path.
func (seg Segment) Next() (Segment, bool) {
	c := seg.end
	if c >= len(seg.path) {
		return Segment{}, false
	}
	for c < len(seg.path) && seg.style.isSeparator(seg.path[c]) {
		c++
	}
	if c >= len(seg.path) {
		return Segment{}, false
	}
	next := seg
	next.begin = c
	next.end = seg.style.nextStop(seg.path, c)
	return next, true
}

// Previous returns the segment preceding the receiver, or false if the
// receiver is the first segment. It never moves before the root
// boundary of the path.
func (seg Segment) Previous() (Segment, bool) {
	c := seg.begin
	if c <= seg.segmentsStart {
		return Segment{}, false
	}
	for {
		c--
		if c < seg.segmentsStart {
			return Segment{}, false
		}
		if !seg.style.isSeparator(seg.path[c]) {
			break
		}
	}

	prev := seg
	prev.end = c + 1
	for c > seg.segmentsStart && !seg.style.isSeparator(seg.path[c]) {
		c--
	}
	if seg.style.isSeparator(seg.path[c]) {
		c++
	}
	prev.begin = c
	return prev, true
}
