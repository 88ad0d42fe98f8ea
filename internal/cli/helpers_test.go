package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSource serves probe inputs from maps.
type fakeSource struct {
	files map[string]string
	env   map[string]string
}

func (f *fakeSource) ReadFile(path string) ([]byte, error) {
	if data, ok := f.files[path]; ok {
		return []byte(data), nil
	}
	return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
}

func (f *fakeSource) Getenv(key string) string { return f.env[key] }

func (f *fakeSource) Run(name string, _ ...string) (string, error) {
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (f *fakeSource) LookPath(name string) (string, error) {
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (f *fakeSource) Machine() string { return "x86_64" }

// debianBox has an os and a kernel but no window manager.
func debianBox() *fakeSource {
	return &fakeSource{
		files: map[string]string{
			"/etc/os-release":            "PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\nNAME=\"Debian GNU/Linux\"\n",
			"/proc/sys/kernel/osrelease": "6.1.0-18-amd64\n",
		},
		env: map[string]string{"SHELL": "/bin/bash"},
	}
}

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolateConfig points config discovery at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	return home
}
