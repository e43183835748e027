package path_test

import (
	"testing"

	"github.com/pathwalk/pathwalk/pkg/path"
	"github.com/stretchr/testify/require"
)

func TestStyleSeparators(t *testing.T) {
	require.Equal(t, byte('/'), path.Unix.Separator())
	require.True(t, path.Unix.IsSeparator('/'))
	require.False(t, path.Unix.IsSeparator('\\'))

	require.Equal(t, byte('\\'), path.Windows.Separator())
	require.True(t, path.Windows.IsSeparator('\\'))
	require.True(t, path.Windows.IsSeparator('/'))
}

func TestStyleString(t *testing.T) {
	require.Equal(t, "unix", path.Unix.String())
	require.Equal(t, "windows", path.Windows.String())
}

func TestZeroStylePanics(t *testing.T) {
	var s path.Style
	require.PanicsWithValue(t, "path: use of uninitialized Style", func() {
		s.GetRoot("/hello")
	})
	require.PanicsWithValue(t, "path: use of uninitialized Style", func() {
		s.Separator()
	})
}

func TestLocalStyle(t *testing.T) {
	// Local is bound at build time. Whichever one it is, it must be
	// a usable style.
	require.NotPanics(t, func() {
		path.Local.GetRoot("some/path")
	})
}
