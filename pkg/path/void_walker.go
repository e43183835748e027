package path

type voidScopeWalker struct{}

func (voidScopeWalker) OnScope(root string, absolute bool) (SegmentWalker, error) {
	return VoidSegmentWalker, nil
}

// VoidScopeWalker is an instance of ScopeWalker that accepts both
// relative and absolute paths and discards everything it observes. It
// is useful as the terminal walker underneath decorators that only
// exist for their side effects.
var VoidScopeWalker ScopeWalker = voidScopeWalker{}

type voidSegmentWalker struct{}

func (voidSegmentWalker) OnNormal(name string) (SegmentWalker, error) {
	return VoidSegmentWalker, nil
}

func (voidSegmentWalker) OnCurrent() (SegmentWalker, error) {
	return VoidSegmentWalker, nil
}

func (voidSegmentWalker) OnUp() (SegmentWalker, error) {
	return VoidSegmentWalker, nil
}

// VoidSegmentWalker is an instance of SegmentWalker that accepts any
// segment and discards it.
var VoidSegmentWalker SegmentWalker = voidSegmentWalker{}
