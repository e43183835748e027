package path

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type relativeScopeWalker struct {
	segmentWalker SegmentWalker
}

// NewRelativeScopeWalker creates a ScopeWalker that only accepts
// relative paths.
func NewRelativeScopeWalker(segmentWalker SegmentWalker) ScopeWalker {
	return &relativeScopeWalker{
		segmentWalker: segmentWalker,
	}
}

func (pw *relativeScopeWalker) OnScope(root string, absolute bool) (SegmentWalker, error) {
	if absolute {
		return nil, status.Error(codes.InvalidArgument, "Path is absolute, while a relative path was expected")
	}
	return pw.segmentWalker, nil
}
