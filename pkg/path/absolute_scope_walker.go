package path

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type absoluteScopeWalker struct {
	segmentWalker SegmentWalker
}

// NewAbsoluteScopeWalker creates a ScopeWalker that only accepts
// absolute paths.
func NewAbsoluteScopeWalker(segmentWalker SegmentWalker) ScopeWalker {
	return &absoluteScopeWalker{
		segmentWalker: segmentWalker,
	}
}

func (pw *absoluteScopeWalker) OnScope(root string, absolute bool) (SegmentWalker, error) {
	if !absolute {
		return nil, status.Error(codes.InvalidArgument, "Path is relative, while an absolute path was expected")
	}
	return pw.segmentWalker, nil
}
