package doctor

import (
	stderrors "errors"
	"fmt"

	"github.com/vfetch/vfetch/internal/probe"
)

// probeHints suggests where each probe looks when it comes back empty.
var probeHints = map[probe.Type]string{
	probe.OS:       "Needs a readable /etc/os-release",
	probe.Kernel:   "Needs a readable /proc/sys/kernel/osrelease",
	probe.WM:       "Set DESKTOP_SESSION or XDG_SESSION_DESKTOP",
	probe.Packages: "Needs pacman, dpkg-query, or rpm on PATH",
	probe.Uptime:   "Needs a readable /proc/uptime",
	probe.Shell:    "Set SHELL",
	probe.Terminal: "Set TERM",
	probe.Battery:  "Needs " + probe.BatteryPath + "energy_now and energy_full",
	probe.Usage:    "Needs " + probe.BatteryPath + "power_now",
}

// ProbeCheck runs one configured probe and reports its value.
// An omitted probe is a warning: the panel still renders without it.
type ProbeCheck struct {
	Type    probe.Type
	Source  probe.Source
	Options probe.Options
}

func (c *ProbeCheck) Name() string     { return "probe_" + string(c.Type) }
func (c *ProbeCheck) Category() string { return "PROBES" }

func (c *ProbeCheck) Run() CheckResult {
	res := probe.Run(c.Type, c.Source, c.Options)
	if res.OK() {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s: %s", c.Type, res.Value),
		}
	}

	msg := fmt.Sprintf("%s: omitted", c.Type)
	if !stderrors.Is(res.Err, probe.ErrNoData) {
		msg = fmt.Sprintf("%s: omitted (%v)", c.Type, res.Err)
	}
	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    msg,
		Suggestion: probeHints[c.Type],
	}
}

func (c *ProbeCheck) Fix() error {
	return nil
}

// NewProbeChecks creates one check per configured probe, in display order.
func NewProbeChecks(types []probe.Type, src probe.Source, opts probe.Options) []Check {
	checks := make([]Check, 0, len(types))
	for _, t := range types {
		checks = append(checks, &ProbeCheck{Type: t, Source: src, Options: opts})
	}
	return checks
}
