package config

import (
	"github.com/vfetch/vfetch/internal/probe"
	"github.com/vfetch/vfetch/internal/render"
)

// Config represents the vfetch configuration file. Keys keep the camelCase
// names of the original JSON format so existing vfetch.conf files load as-is.
type Config struct {
	// DisplayAscii paints AsciiImage to the left of the data lines.
	DisplayAscii bool `yaml:"displayAscii" mapstructure:"displayAscii"`

	// AsciiImage is the path of the art file. Relative paths are resolved
	// against the directory of the config file; ~ expands to $HOME.
	AsciiImage string `yaml:"asciiImage" mapstructure:"asciiImage"`

	// Offset is the [x, y] cell where the text block starts.
	Offset []int `yaml:"offset" mapstructure:"offset"`

	// AlignMode is "spaces" or "center".
	AlignMode string `yaml:"alignMode" mapstructure:"alignMode"`

	// AlignSpace is the minimum gap between the longest label and the values
	// in spaces mode.
	AlignSpace int `yaml:"alignSpace" mapstructure:"alignSpace"`

	// ColorIndex picks the label color: 0-7 regular, 8-15 bright.
	ColorIndex int `yaml:"colorIndex" mapstructure:"colorIndex"`

	// Data lists the probes to show, top to bottom.
	Data []string `yaml:"data" mapstructure:"data"`

	IconMode  bool `yaml:"iconMode" mapstructure:"iconMode"`
	Lowercase bool `yaml:"lowercase" mapstructure:"lowercase"`

	DisplayArchitecture   bool `yaml:"displayArchitecture" mapstructure:"displayArchitecture"`
	RemoveLinux           bool `yaml:"removeLinux" mapstructure:"removeLinux"`
	KernelFullName        bool `yaml:"kernelFullName" mapstructure:"kernelFullName"`
	DisplayPackageManager bool `yaml:"displayPackageManager" mapstructure:"displayPackageManager"`

	// Backend selects the cursor implementation: "ansi" or "termenv".
	Backend string `yaml:"backend" mapstructure:"backend"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DisplayAscii:   false,
		Offset:         []int{0, 0},
		AlignMode:      string(render.AlignSpaces),
		AlignSpace:     2,
		ColorIndex:     int(render.Blue),
		Data:           []string{string(probe.OS), string(probe.Kernel), string(probe.WM), string(probe.Packages), string(probe.Uptime)},
		KernelFullName: true,
		Backend:        string(render.BackendANSI),
	}
}

// Layout converts the layout settings of a validated config.
func (c *Config) Layout() (render.LayoutOptions, error) {
	align, err := render.ParseAlignMode(c.AlignMode)
	if err != nil {
		return render.LayoutOptions{}, err
	}
	color, err := render.ParseColor(c.ColorIndex)
	if err != nil {
		return render.LayoutOptions{}, err
	}
	x, y := c.offset()
	return render.LayoutOptions{
		Color:      color,
		Offset:     render.Position{X: x, Y: y},
		Align:      align,
		AlignSpace: c.AlignSpace,
	}, nil
}

func (c *Config) offset() (int, int) {
	if len(c.Offset) < 2 {
		return 0, 0
	}
	return c.Offset[0], c.Offset[1]
}

// ProbeTypes converts Data into probe types, rejecting unknown names.
func (c *Config) ProbeTypes() ([]probe.Type, error) {
	types := make([]probe.Type, 0, len(c.Data))
	for _, name := range c.Data {
		t, err := probe.ParseType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// ProbeOptions returns the options passed to every probe.
func (c *Config) ProbeOptions() probe.Options {
	return probe.Options{
		Settings: probe.Settings{
			DisplayArchitecture:   c.DisplayArchitecture,
			RemoveLinux:           c.RemoveLinux,
			KernelFullName:        c.KernelFullName,
			DisplayPackageManager: c.DisplayPackageManager,
		},
		IconMode:  c.IconMode,
		Lowercase: c.Lowercase,
	}
}
