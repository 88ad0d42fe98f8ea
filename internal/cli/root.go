package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/vfetch/vfetch/internal/logger"
	"github.com/vfetch/vfetch/internal/ui"
	"github.com/vfetch/vfetch/internal/util"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

// Panel flags, only meaningful on the root command
var (
	backendFlag string
	asciiFlag   string
	noASCIIFlag bool
)

// rootCmd draws the panel when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "vfetch",
	Short: "Print a system summary panel next to ASCII art",
	Long: `vfetch clears the terminal and draws a small panel of system facts
(OS, kernel, window manager, package count, uptime, ...) beside an
optional piece of ASCII art, then parks the cursor below both.

Configuration is read from $XDG_CONFIG_HOME/vfetch/vfetch.conf (JSON)
or $XDG_CONFIG_HOME/vfetch/config.yaml. Run 'vfetch init' to create one.

Examples:
  vfetch
  vfetch --ascii ~/art/arch.txt
  vfetch --no-ascii --backend termenv`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetDefault(logger.New(os.Stderr, "", true))
		}
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return fetchCommand(cmd.OutOrStdout(), fetchOptions{
			ConfigPath: cfgFile,
			Backend:    backendFlag,
			ASCII:      asciiFlag,
			NoASCII:    noASCIIFlag,
			NoColor:    noColor,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/vfetch/vfetch.conf)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&backendFlag, "backend", "",
		"cursor backend: ansi (saves the cursor with ESC 7/ESC 8) or termenv (uses CSI s/CSI u, which some terminals ignore)")
	rootCmd.Flags().StringVar(&asciiFlag, "ascii", "", "draw this art file (overrides asciiImage)")
	rootCmd.Flags().BoolVar(&noASCIIFlag, "no-ascii", false, "don't draw art")
	rootCmd.MarkFlagsMutuallyExclusive("ascii", "no-ascii")
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders an error for the terminal, adding command suggestions
// for typos like 'vfetch doctr'.
func formatError(err error) string {
	msg := err.Error()
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if !isUnknownCommandError(err) {
		return msg
	}

	name := extractUnknownCommand(err)
	if name == "" {
		return msg
	}
	var commands []string
	for _, c := range rootCmd.Commands() {
		commands = append(commands, c.Name())
	}
	if similar := util.SuggestSimilar(name, commands, 3); len(similar) > 0 {
		msg += fmt.Sprintf("\nDid you mean: %s?\n", util.JoinOrNone(similar))
	}
	return msg
}

var (
	unknownCommandPattern = regexp.MustCompile(`unknown command "([^"]+)"`)
	unknownFlagPattern    = regexp.MustCompile(`^unknown (shorthand )?flag`)
)

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return unknownCommandPattern.MatchString(msg) || unknownFlagPattern.MatchString(msg)
}

// extractUnknownCommand pulls the rejected name out of cobra's error.
func extractUnknownCommand(err error) string {
	m := unknownCommandPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return ""
	}
	return m[1]
}
