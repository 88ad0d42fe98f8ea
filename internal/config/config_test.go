package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vfetch/vfetch/internal/errors"
	"github.com/vfetch/vfetch/internal/probe"
	"github.com/vfetch/vfetch/internal/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.DisplayAscii)
	assert.Equal(t, []int{0, 0}, cfg.Offset)
	assert.Equal(t, "spaces", cfg.AlignMode)
	assert.Equal(t, 2, cfg.AlignSpace)
	assert.Equal(t, 4, cfg.ColorIndex)
	assert.Equal(t, []string{"os", "kernel", "wm", "packages", "uptime"}, cfg.Data)
	assert.True(t, cfg.KernelFullName)
	assert.Equal(t, "ansi", cfg.Backend)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_LegacyJSON(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "vfetch.conf")

	content := `{
	"displayAscii": true,
	"asciiImage": "art/arch.txt",
	"offset": [2, 1],
	"alignMode": "center",
	"alignSpace": 3,
	"colorIndex": 12,
	"data": ["os", "kernel", "uptime", "battery"],
	"iconMode": true,
	"lowercase": true,
	"displayArchitecture": true,
	"removeLinux": true,
	"kernelFullName": false,
	"displayPackageManager": true
}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.DisplayAscii)
	assert.Equal(t, filepath.Join(dir, "art/arch.txt"), cfg.AsciiImage)
	assert.Equal(t, []int{2, 1}, cfg.Offset)
	assert.Equal(t, "center", cfg.AlignMode)
	assert.Equal(t, 3, cfg.AlignSpace)
	assert.Equal(t, 12, cfg.ColorIndex)
	assert.Equal(t, []string{"os", "kernel", "uptime", "battery"}, cfg.Data)
	assert.True(t, cfg.IconMode)
	assert.True(t, cfg.Lowercase)
	assert.True(t, cfg.DisplayArchitecture)
	assert.True(t, cfg.RemoveLinux)
	assert.False(t, cfg.KernelFullName)
	assert.True(t, cfg.DisplayPackageManager)
	assert.Equal(t, "ansi", cfg.Backend, "missing keys keep their defaults")
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
alignMode: spaces
alignSpace: 4
data: [shell, terminal]
backend: termenv
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.AlignSpace)
	assert.Equal(t, []string{"shell", "terminal"}, cfg.Data)
	assert.Equal(t, "termenv", cfg.Backend)
	assert.Equal(t, []int{0, 0}, cfg.Offset)
	assert.True(t, cfg.KernelFullName)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/vfetch.conf")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "vfetch.conf")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"alignMode": `), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, home string) string
		explicit func(home string) string
		wantErr  bool
		wantPath func(home string) string
	}{
		{
			name: "explicit path exists",
			setup: func(t *testing.T, home string) string {
				path := filepath.Join(home, "custom.yaml")
				require.NoError(t, os.WriteFile(path, []byte("alignSpace: 1"), 0644))
				return path
			},
			explicit: func(home string) string { return filepath.Join(home, "custom.yaml") },
			wantPath: func(home string) string { return filepath.Join(home, "custom.yaml") },
		},
		{
			name:     "explicit path not found",
			explicit: func(home string) string { return filepath.Join(home, "missing.yaml") },
			wantErr:  true,
		},
		{
			name: "legacy conf preferred over yaml",
			setup: func(t *testing.T, home string) string {
				dir := filepath.Join(home, AppDir)
				require.NoError(t, os.MkdirAll(dir, 0755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, LegacyConfigFile), []byte("{}"), 0644))
				require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(""), 0644))
				return ""
			},
			wantPath: func(home string) string { return filepath.Join(home, AppDir, LegacyConfigFile) },
		},
		{
			name: "yaml config",
			setup: func(t *testing.T, home string) string {
				dir := filepath.Join(home, AppDir)
				require.NoError(t, os.MkdirAll(dir, 0755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(""), 0644))
				return ""
			},
			wantPath: func(home string) string { return filepath.Join(home, AppDir, ConfigFile) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", home)
			if tt.setup != nil {
				tt.setup(t, home)
			}

			explicit := ""
			if tt.explicit != nil {
				explicit = tt.explicit(home)
			}

			path, err := Find(explicit)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath(home), path)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, path, err := LoadOrDefault("")
		require.NoError(t, err)
		if path == "" {
			assert.Equal(t, DefaultConfig(), cfg)
		}
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colorIndex: 9\n"), 0644))

		cfg, got, err := LoadOrDefault(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.Equal(t, 9, cfg.ColorIndex)
	})
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ResolvePath("", "/etc"))
	assert.Equal(t, "/abs/art.txt", ResolvePath("/abs/art.txt", "/etc/vfetch"))
	assert.Equal(t, "/etc/vfetch/art.txt", ResolvePath("art.txt", "/etc/vfetch"))
	assert.Equal(t, filepath.Join(home, "art.txt"), ResolvePath("~/art.txt", "/etc/vfetch"))
	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, "~user/x", ExpandTilde("~user/x"))
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DisplayAscii = true
	cfg.AsciiImage = "/usr/share/vfetch/arch.txt"
	cfg.AlignMode = "center"
	cfg.Data = []string{"os", "shell"}
	require.NoError(t, Write(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# vfetch configuration")

	var raw map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "center", raw["alignMode"])
	assert.Equal(t, true, raw["displayAscii"])

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Offset = []int{3, 1}
	cfg.AlignMode = "center"
	cfg.ColorIndex = 9

	layout, err := cfg.Layout()
	require.NoError(t, err)
	assert.Equal(t, render.LayoutOptions{
		Color:      render.BrightRed,
		Offset:     render.Position{X: 3, Y: 1},
		Align:      render.AlignCenter,
		AlignSpace: 2,
	}, layout)

	cfg.AlignMode = "left"
	_, err = cfg.Layout()
	assert.Error(t, err)
}

func TestProbeTypesAndOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data = []string{"battery", "os"}
	cfg.IconMode = true
	cfg.RemoveLinux = true

	types, err := cfg.ProbeTypes()
	require.NoError(t, err)
	assert.Equal(t, []probe.Type{probe.Battery, probe.OS}, types)

	opts := cfg.ProbeOptions()
	assert.True(t, opts.IconMode)
	assert.True(t, opts.RemoveLinux)
	assert.True(t, opts.KernelFullName)

	cfg.Data = []string{"gpu"}
	_, err = cfg.ProbeTypes()
	assert.Error(t, err)
}
