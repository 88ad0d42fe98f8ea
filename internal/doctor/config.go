package doctor

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/vfetch/vfetch/internal/config"
	"github.com/vfetch/vfetch/internal/errors"
	"github.com/vfetch/vfetch/internal/render"
)

// describe splits a structured error into its message and suggestion so the
// report shows them on separate lines.
func describe(err error) (string, string) {
	var vfErr *errors.Error
	if stderrors.As(err, &vfErr) {
		return vfErr.Message, vfErr.Suggestion
	}
	return err.Error(), ""
}

// ConfigFileCheck verifies that a config file exists.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
	// WritePath is where Fix writes a default config. Empty means config.DefaultPath().
	WritePath string
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		msg, suggestion := describe(err)
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No config file found, using built-in defaults",
			Suggestion: "Run 'vfetch init' to create " + c.writePath(),
			Fixable:    true,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", path),
	}
}

// Fix writes the default config when none could be found.
func (c *ConfigFileCheck) Fix() error {
	if path, err := config.Find(c.ConfigPath); err != nil || path != "" {
		return err
	}
	return config.Write(c.writePath(), config.DefaultConfig())
}

func (c *ConfigFileCheck) writePath() string {
	if c.WritePath != "" {
		return c.WritePath
	}
	return config.DefaultPath()
}

// ConfigSchemaCheck verifies that the config file loads and validates.
type ConfigSchemaCheck struct {
	ConfigPath string
}

func (c *ConfigSchemaCheck) Name() string     { return "config_schema" }
func (c *ConfigSchemaCheck) Category() string { return "CONFIG" }

func (c *ConfigSchemaCheck) Run() CheckResult {
	cfg, path, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		msg, suggestion := describe(err)
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	if err := config.Validate(cfg); err != nil {
		msg, suggestion := describe(err)
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	if path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Built-in defaults are valid",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config valid",
	}
}

func (c *ConfigSchemaCheck) Fix() error {
	return nil // Schema issues require manual intervention
}

// AsciiImageCheck verifies the art file can be read when art is enabled.
type AsciiImageCheck struct {
	Config *config.Config
}

func (c *AsciiImageCheck) Name() string     { return "ascii_image" }
func (c *AsciiImageCheck) Category() string { return "ART" }

func (c *AsciiImageCheck) Run() CheckResult {
	if c.Config == nil || !c.Config.DisplayAscii {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Art disabled",
		}
	}

	data, err := os.ReadFile(c.Config.AsciiImage)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Can't read art file: %v", err),
			Suggestion: "Check asciiImage in your config, or run with --no-ascii",
		}
	}

	block := render.MeasureASCII(render.TrimASCII(string(data)))
	if block.Height == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Art file is blank: %s", c.Config.AsciiImage),
			Suggestion: "Nothing will be drawn next to the data lines",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Art: %dx%d from %s", block.Width, block.Height, c.Config.AsciiImage),
	}
}

func (c *AsciiImageCheck) Fix() error {
	return nil
}

// NewConfigChecks creates all config-related checks.
func NewConfigChecks(configPath string, cfg *config.Config) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigSchemaCheck{ConfigPath: configPath},
		&AsciiImageCheck{Config: cfg},
	}
}
