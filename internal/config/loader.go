package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/vfetch/vfetch/internal/errors"
)

const (
	// AppDir is the directory under the config home holding vfetch's files.
	AppDir = "vfetch"
	// LegacyConfigFile is the JSON config file name of the original format.
	LegacyConfigFile = "vfetch.conf"
	// ConfigFile is the YAML config file name written by 'vfetch init'.
	ConfigFile = "config.yaml"
)

// ConfigHome returns $XDG_CONFIG_HOME, or ~/.config when it is unset.
func ConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// DefaultPath is where 'vfetch init' writes its config.
func DefaultPath() string {
	return filepath.Join(ConfigHome(), AppDir, ConfigFile)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. $XDG_CONFIG_HOME/vfetch/vfetch.conf
// 3. $XDG_CONFIG_HOME/vfetch/config.yaml
// 4. vfetch.conf next to the vfetch executable
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	var candidates []string
	if home := ConfigHome(); home != "" {
		candidates = append(candidates,
			filepath.Join(home, AppDir, LegacyConfigFile),
			filepath.Join(home, AppDir, ConfigFile))
	}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), LegacyConfigFile))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// Load reads config from the specified path.
// Files ending in .conf (or with no extension) are read as JSON.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" || ext == "conf" {
		v.SetConfigType("json")
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'vfetch init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid JSON or YAML")
	}

	return parseConfig(v, path)
}

// LoadOrDefault loads the config found by Find, or returns defaults if there is none.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the syntax in "+path)
	}

	cfg.AsciiImage = ResolvePath(cfg.AsciiImage, filepath.Dir(path))
	return cfg, nil
}

// setDefaults registers defaults so keys missing from the file keep DefaultConfig values.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("displayAscii", def.DisplayAscii)
	v.SetDefault("offset", def.Offset)
	v.SetDefault("alignMode", def.AlignMode)
	v.SetDefault("alignSpace", def.AlignSpace)
	v.SetDefault("colorIndex", def.ColorIndex)
	v.SetDefault("data", def.Data)
	v.SetDefault("kernelFullName", def.KernelFullName)
	v.SetDefault("backend", def.Backend)
}

// ResolvePath expands a leading ~ and makes relative paths relative to baseDir.
func ResolvePath(path, baseDir string) string {
	if path == "" {
		return path
	}
	path = ExpandTilde(path)
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	return path
}

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
