package path_test

import (
	"testing"

	"github.com/pathwalk/pathwalk/pkg/path"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	t.Run("Unix", func(t *testing.T) {
		for _, data := range []struct {
			a        string
			b        string
			expected string
		}{
			{"hello/there", "../world", "hello/world"},
			{"hello", "/world", "hello/world"},
			{"/first", "second", "/first/second"},
			{"hello", "..", "."},
			{"hello/there", "..", "hello"},
			{"a", "b", "a/b"},
			{"", "", ""},
			{"/", "..", "/"},
		} {
			t.Run(data.a+"+"+data.b, func(t *testing.T) {
				require.Equal(t, data.expected, path.Unix.JoinString(data.a, data.b))
			})
		}
	})

	t.Run("Windows", func(t *testing.T) {
		require.Equal(t, "C:\\admin",
			path.Windows.JoinString("C:\\users", "..\\admin"))
		require.Equal(t, "C:\\users\\admin",
			path.Windows.JoinString("C:\\users", "admin"))
	})
}

func TestJoinMultiple(t *testing.T) {
	t.Run("Three", func(t *testing.T) {
		buffer := make([]byte, 32)
		n := path.Unix.JoinMultiple([]string{"hello", "there", "world"}, buffer)
		require.Equal(t, "hello/there/world", string(buffer[:n]))
	})

	t.Run("WithRelativeParts", func(t *testing.T) {
		buffer := make([]byte, 32)
		n := path.Unix.JoinMultiple([]string{"/usr", "./lib", "../local"}, buffer)
		require.Equal(t, "/usr/local", string(buffer[:n]))
	})

	t.Run("Empty", func(t *testing.T) {
		buffer := make([]byte, 4)
		n := path.Unix.JoinMultiple(nil, buffer)
		require.Equal(t, 0, n)
		require.Equal(t, byte(0), buffer[0])
	})

	t.Run("BackCrossesFragments", func(t *testing.T) {
		buffer := make([]byte, 32)
		n := path.Unix.JoinMultiple([]string{"a/b", "../../c"}, buffer)
		require.Equal(t, "c", string(buffer[:n]))
	})
}

func TestJoinBuffer(t *testing.T) {
	n := path.Unix.Join("hello/there", "../world", nil)
	require.Equal(t, 11, n)

	buffer := make([]byte, 6)
	n = path.Unix.Join("hello/there", "../world", buffer)
	require.Equal(t, 11, n)
	require.Equal(t, []byte("hello\x00"), buffer)
}
