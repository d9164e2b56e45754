package selftest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()

	checks, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, checks, 3)

	assert.Equal(t, "TypeScript configuration", checks[0].Name)
	assert.Equal(t, "ESLint configuration", checks[1].Name)
	assert.Equal(t, "Vite configuration", checks[2].Name)
	for _, c := range checks {
		assert.Equal(t, dir, c.Dir)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
timeout: 30s
checks:
  - name: tsc
    command: npx
    args: [tsc, --noEmit]
    dir: web
  - command: npx
    args: [eslint, .]
    timeout: 5s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "selftest.yml"), []byte(content), 0o644))

	checks, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, checks, 2)

	assert.Equal(t, "tsc", checks[0].Name)
	assert.Equal(t, []string{"tsc", "--noEmit"}, checks[0].Args)
	assert.Equal(t, filepath.Join(dir, "web"), checks[0].Dir)
	assert.Equal(t, 30*time.Second, checks[0].Timeout)

	assert.Equal(t, "npx", checks[1].Name)
	assert.Equal(t, dir, checks[1].Dir)
	assert.Equal(t, 5*time.Second, checks[1].Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"no checks":       "timeout: 1s\n",
		"missing command": "checks:\n  - name: lint\n",
		"bad yaml":        "checks: [\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "selftest.yaml"), []byte(content), 0o644))

			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}
