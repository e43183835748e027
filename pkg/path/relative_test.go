package path_test

import (
	"testing"

	"github.com/pathwalk/pathwalk/pkg/path"
	"github.com/stretchr/testify/require"
)

func TestGetRelative(t *testing.T) {
	t.Run("Unix", func(t *testing.T) {
		for _, data := range []struct {
			base     string
			path     string
			expected string
		}{
			{"/path/same", "/path/not_same/ho/..", "../not_same"},
			{"/a/b/c", "/a", "../.."},
			{"/a", "/a/b/c", "b/c"},
			{"/path/same", "/path/same", "."},
			{"/path/long/one", "/path/long/one/two", "two"},
			{"/hello/.//world", "/hello/world", "."},
			{"base", "base/child", "child"},
			{"/", "/test", "test"},
			{"/test", "/", ".."},
		} {
			t.Run(data.base+"+"+data.path, func(t *testing.T) {
				require.Equal(t, data.expected,
					path.Unix.GetRelativeString(data.base, data.path))
			})
		}
	})

	t.Run("RootMismatch", func(t *testing.T) {
		require.Equal(t, 0, path.Unix.GetRelative("relative", "/absolute", nil))
		require.Equal(t, 0, path.Unix.GetRelative("/absolute", "relative", nil))
		require.Equal(t, 0, path.Windows.GetRelative("C:\\users", "D:\\users", nil))
	})

	t.Run("WindowsCaseInsensitiveRoot", func(t *testing.T) {
		require.Equal(t, "..\\admin",
			path.Windows.GetRelativeString("c:\\users", "C:\\admin"))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, data := range []struct {
			base   string
			target string
		}{
			{"/a/b", "/a/x/y"},
			{"/hello/there", "/hello"},
			{"/var/log", "/var/log/messages"},
		} {
			relative := path.Unix.GetRelativeString(data.base, data.target)
			require.Equal(t,
				path.Unix.NormalizeString(data.target),
				path.Unix.GetAbsoluteString(data.base, relative))
		}
	})

	t.Run("Buffer", func(t *testing.T) {
		n := path.Unix.GetRelative("/a/b/c", "/a", nil)
		require.Equal(t, 5, n)

		buffer := make([]byte, 3)
		n = path.Unix.GetRelative("/a/b/c", "/a", buffer)
		require.Equal(t, 5, n)
		require.Equal(t, []byte("..\x00"), buffer)
	})
}
