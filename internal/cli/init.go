package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/vfetch/vfetch/internal/config"
	"github.com/vfetch/vfetch/internal/errors"
	"github.com/vfetch/vfetch/internal/probe"
	"github.com/vfetch/vfetch/internal/render"
	"github.com/vfetch/vfetch/internal/ui"
	"golang.org/x/term"
)

var (
	initForce          bool
	initNonInteractive bool
)

// initCmd creates a new config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a vfetch config file",
	Long: `Write a config file to $XDG_CONFIG_HOME/vfetch/config.yaml (or the path
given with --config).

When stdin is a terminal you pick the probes, alignment, and art file
interactively. Otherwise the defaults are written.

Examples:
  vfetch init
  vfetch init --force
  vfetch init --non-interactive --config ./vfetch.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), InitOptions{
			Path:           cfgFile,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive || !term.IsTerminal(int(os.Stdin.Fd())),
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and write the defaults")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Where to write; empty means config.DefaultPath()
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init writes a new config file.
func Init(w io.Writer, opts InitOptions) error {
	configPath := opts.Path
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Created %s\n\n", ui.SuccessStyle().Render(ui.SymbolSuccess), configPath)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  vfetch         - Draw the panel")
	fmt.Fprintln(w, "  vfetch probes  - See what each probe reports")
	fmt.Fprintln(w, "  vfetch doctor  - Check configuration")
	return nil
}

// probeOptions lists every probe for the multi-select, preselecting the current data.
func probeOptions(selected []string) []huh.Option[string] {
	isSelected := make(map[string]bool, len(selected))
	for _, name := range selected {
		isSelected[name] = true
	}

	opts := make([]huh.Option[string], 0, len(probe.AllTypes))
	for _, t := range probe.AllTypes {
		key := fmt.Sprintf("%-9s %s", t, probe.Label(t, false))
		opts = append(opts, huh.NewOption(key, string(t)).Selected(isSelected[string(t)]))
	}
	return opts
}

// promptConfig fills cfg from an interactive form.
func promptConfig(cfg *config.Config) error {
	data := append([]string(nil), cfg.Data...)
	align := cfg.AlignMode
	var asciiImage string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Lines to show").
				Description("Shown top to bottom in this order").
				Options(probeOptions(data)...).
				Value(&data),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Alignment").
				Options(
					huh.NewOption("spaces  (value column after the longest label)", string(render.AlignSpaces)),
					huh.NewOption("center  (labels right-aligned around ' ~ ')", string(render.AlignCenter)),
				).
				Value(&align),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("ASCII art file (optional)").
				Description("Drawn to the left of the lines; leave empty for none").
				Placeholder("~/.config/vfetch/art.txt").
				Value(&asciiImage).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, err := os.Stat(config.ExpandTilde(s)); err != nil {
						return fmt.Errorf("can't read %s", s)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	cfg.Data = data
	cfg.AlignMode = align
	if s := strings.TrimSpace(asciiImage); s != "" {
		cfg.DisplayAscii = true
		cfg.AsciiImage = s
	}
	return nil
}
