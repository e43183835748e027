package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pathwalk/pathwalk/internal/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, "style: windows\n"))
		require.NoError(t, err)
		require.Equal(t, "windows", cfg.Style)
	})

	t.Run("Empty", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, ""))
		require.NoError(t, err)
		require.Equal(t, "", cfg.Style)
	})

	t.Run("UnknownStyle", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "style: vms\n"))
		var validationError *config.ValidationError
		require.ErrorAs(t, err, &validationError)
		require.Equal(t, []string{
			`style: unknown style "vms" (want unix, windows or auto)`,
		}, validationError.Problems)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "style: [\n"))
		require.ErrorContains(t, err, "parse config")
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorContains(t, err, "read config")
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	for _, style := range []string{"", "unix", "windows", "auto"} {
		cfg := config.Config{Style: style}
		require.NoError(t, cfg.Validate())
	}
}
