package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/vfetch/vfetch/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# vfetch configuration
# data lists the lines to show, top to bottom:
#   os, kernel, wm, packages, uptime, shell, terminal, battery, usage

`

// Marshal renders cfg as commented YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}
	return buf.Bytes(), nil
}

// Write saves cfg as YAML at path, creating parent directories.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory: "+filepath.Dir(path),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}
	return nil
}
