package probe

import (
	"fmt"
	"strings"
)

// Type identifies one line of system information.
type Type string

const (
	OS       Type = "os"
	Kernel   Type = "kernel"
	WM       Type = "wm"
	Packages Type = "packages"
	Uptime   Type = "uptime"
	Shell    Type = "shell"
	Terminal Type = "terminal"
	Battery  Type = "battery"
	Usage    Type = "usage"
)

// AllTypes lists every known probe in catalog order.
var AllTypes = []Type{OS, Kernel, WM, Packages, Uptime, Shell, Terminal, Battery, Usage}

// Labels holds the two names a probe can be displayed under.
type Labels struct {
	Plain string
	// Icon is a Nerd Font glyph used when icon mode is on.
	Icon string
}

var catalog = map[Type]Labels{
	OS:       {Plain: "OS", Icon: "\uf83c"},
	Kernel:   {Plain: "Kernel", Icon: "\uf824"},
	WM:       {Plain: "WM", Icon: "\ufab1"},
	Packages: {Plain: "Packages", Icon: "\uf8d5"},
	Uptime:   {Plain: "Uptime", Icon: "\uf64f"},
	Shell:    {Plain: "Shell", Icon: "\uf120"},
	Terminal: {Plain: "Terminal", Icon: "\uf489"},
	Battery:  {Plain: "Battery", Icon: "\uf240"},
	Usage:    {Plain: "Usage", Icon: "\uf0e7"},
}

// ParseType validates a configured probe identifier.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := catalog[t]; !ok {
		return "", fmt.Errorf("unknown data type %q (known: %s)", s, strings.Join(TypeNames(), ", "))
	}
	return t, nil
}

// TypeNames returns the identifiers of AllTypes as strings.
func TypeNames() []string {
	names := make([]string, len(AllTypes))
	for i, t := range AllTypes {
		names[i] = string(t)
	}
	return names
}

// Label returns the display label for t.
func Label(t Type, iconMode bool) string {
	labels := catalog[t]
	if iconMode {
		return labels.Icon
	}
	return labels.Plain
}
