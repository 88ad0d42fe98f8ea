// Package ui styles vfetch's ordinary CLI output: doctor reports, the probe
// table, and init confirmations. The panel itself is drawn by the render
// package and never goes through lipgloss styles.
//
// Colors are ANSI indexes so output follows the terminal theme. Use
// DisableColors() for --no-color.
package ui
