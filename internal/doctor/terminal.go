package doctor

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TerminalCheck verifies stdout is a terminal that honors cursor addressing.
type TerminalCheck struct {
	IsTerminal func() bool
}

func (c *TerminalCheck) Name() string     { return "terminal_stdout" }
func (c *TerminalCheck) Category() string { return "TERMINAL" }

func (c *TerminalCheck) Run() CheckResult {
	if c.IsTerminal != nil && c.IsTerminal() {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "stdout is a terminal",
		}
	}
	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    "stdout is not a terminal",
		Suggestion: "The panel is drawn with cursor escapes; piped output will contain them verbatim",
	}
}

func (c *TerminalCheck) Fix() error {
	return nil
}

// ColorCheck reports the color support detected from the environment.
type ColorCheck struct {
	Profile termenv.Profile
	NoColor bool
}

func (c *ColorCheck) Name() string     { return "terminal_color" }
func (c *ColorCheck) Category() string { return "TERMINAL" }

func (c *ColorCheck) Run() CheckResult {
	if c.NoColor {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "NO_COLOR is set, labels are drawn without color",
		}
	}
	if c.Profile == termenv.Ascii {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Terminal reports no color support",
			Suggestion: "Run with --no-color to skip color escapes",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Color support: " + profileName(c.Profile),
	}
}

func (c *ColorCheck) Fix() error {
	return nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true color"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "none"
	}
}

// NewTerminalChecks creates checks against the current stdout.
func NewTerminalChecks() []Check {
	out := termenv.NewOutput(os.Stdout)
	return []Check{
		&TerminalCheck{IsTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }},
		&ColorCheck{Profile: out.EnvColorProfile(), NoColor: termenv.EnvNoColor()},
	}
}
