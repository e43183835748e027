package path_test

import (
	"testing"

	"github.com/pathwalk/pathwalk/pkg/path"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("Unix", func(t *testing.T) {
		for _, data := range []struct {
			input    string
			expected string
		}{
			{"/var/./logs/../lib", "/var/lib"},
			{"a/./b/../c", "a/c"},
			{"/var////logs//test/", "/var/logs/test"},
			{"hello/../", "."},
			{"./hello/../", "."},
			{"/..", "/"},
			{"/../../..", "/"},
			{"..", ".."},
			{"../..", "../.."},
			{"foo/../../bar", "../bar"},
			{"./", "."},
			{".", "."},
			{"", ""},
			{"/", "/"},
			{"///", "/"},
			{"relative", "relative"},
			{"/mixed/.././folder/../test", "/test"},
		} {
			t.Run(data.input, func(t *testing.T) {
				require.Equal(t, data.expected, path.Unix.NormalizeString(data.input))
			})
		}
	})

	t.Run("Windows", func(t *testing.T) {
		for _, data := range []struct {
			input    string
			expected string
		}{
			{"C:\\users\\.\\admin\\..\\local", "C:\\local"},
			{"C:..", "C:.."},
			{"C:\\..", "C:\\"},
			{"\\\\server\\share\\a\\..\\b", "\\\\server\\share\\b"},
			{"..\\hello\\world", "..\\hello\\world"},
			{"C:/users//local", "C:/users\\local"},
		} {
			t.Run(data.input, func(t *testing.T) {
				require.Equal(t, data.expected, path.Windows.NormalizeString(data.input))
			})
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, input := range []string{
			"/var/./logs/../lib",
			"foo/../../bar",
			"C:\\users\\.\\admin",
			"hello/../",
		} {
			once := path.Unix.NormalizeString(input)
			require.Equal(t, once, path.Unix.NormalizeString(once))
		}
	})
}

func TestNormalizeBuffer(t *testing.T) {
	t.Run("Measure", func(t *testing.T) {
		require.Equal(t, 8, path.Unix.Normalize("/var/./logs/../lib", nil))
	})

	t.Run("Truncation", func(t *testing.T) {
		buffer := make([]byte, 4)
		n := path.Unix.Normalize("/var/./logs/../lib", buffer)
		require.Equal(t, 8, n)
		require.Equal(t, []byte("/va\x00"), buffer)
	})

	t.Run("ExactFit", func(t *testing.T) {
		buffer := make([]byte, 9)
		n := path.Unix.Normalize("/var/./logs/../lib", buffer)
		require.Equal(t, 8, n)
		require.Equal(t, "/var/lib", string(buffer[:n]))
		require.Equal(t, byte(0), buffer[n])
	})

	t.Run("EmptyInput", func(t *testing.T) {
		buffer := make([]byte, 4)
		n := path.Unix.Normalize("", buffer)
		require.Equal(t, 0, n)
		require.Equal(t, byte(0), buffer[0])
	})
}
