package path_test

import (
	"testing"

	"github.com/pathwalk/pathwalk/pkg/path"
	"github.com/stretchr/testify/require"
)

func TestGetAbsolute(t *testing.T) {
	t.Run("Unix", func(t *testing.T) {
		for _, data := range []struct {
			base     string
			path     string
			expected string
		}{
			{"/hello/there", "../world", "/hello/world"},
			{"/hello//../there", "test//thing", "/there/test/thing"},
			{"/hello/there", "/world", "/world"},
			{"/hello/there", "..", "/hello"},
			{"/hello/../there", "world", "/there/world"},
			{"/hello/there", ".", "/hello/there"},
			{"relative_base", "x", "/relative_base/x"},
			{"", "", "/"},
		} {
			t.Run(data.base+"+"+data.path, func(t *testing.T) {
				require.Equal(t, data.expected,
					path.Unix.GetAbsoluteString(data.base, data.path))
			})
		}
	})

	t.Run("Windows", func(t *testing.T) {
		require.Equal(t, "C:\\admin",
			path.Windows.GetAbsoluteString("C:\\users", "..\\admin"))
		require.Equal(t, "D:\\data",
			path.Windows.GetAbsoluteString("C:\\users", "D:\\data"))
	})

	t.Run("Buffer", func(t *testing.T) {
		n := path.Unix.GetAbsolute("/hello/there", "../world", nil)
		require.Equal(t, 12, n)

		buffer := make([]byte, 8)
		n = path.Unix.GetAbsolute("/hello/there", "../world", buffer)
		require.Equal(t, 12, n)
		require.Equal(t, []byte("/hello/\x00"), buffer)
	})
}
