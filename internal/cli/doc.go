// Package cli implements the vfetch command-line interface.
//
// The root command draws the panel: it loads and validates the config,
// reads the art file, runs the configured probes, and hands the lines to
// the render package. Everything that can fail does so before the screen
// is cleared.
//
// # Command Structure
//
//	vfetch                - Draw the panel
//	vfetch init           - Create a config file
//	vfetch probes         - Print probe values as a table
//	vfetch doctor         - Diagnose config, art, terminal, and probes
//	vfetch version        - Print version information
//	vfetch completion     - Generate shell completions
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and available to all subcommands. --backend, --ascii, and
// --no-ascii only apply to drawing the panel.
package cli
