// Package probe gathers the values shown on the vfetch panel.
//
// Each probe reads the machine through a Source and either produces a
// value or fails. Failed probes are left off the panel.
package probe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vfetch/vfetch/internal/logger"
	"github.com/vfetch/vfetch/internal/render"
)

// ErrNoData is returned by probes that ran but found nothing to show.
var ErrNoData = errors.New("no data")

// BatteryPath is the sysfs directory of the battery read by the battery and usage probes.
const BatteryPath = "/sys/class/power_supply/BAT0/"

// Settings holds the per-probe options.
type Settings struct {
	DisplayArchitecture   bool
	RemoveLinux           bool
	KernelFullName        bool
	DisplayPackageManager bool
}

// Options controls how probe results become panel lines.
type Options struct {
	Settings
	IconMode  bool
	Lowercase bool
}

// Func produces the value for one probe.
type Func func(src Source, s Settings) (string, error)

var registry = map[Type]Func{
	OS:       probeOS,
	Kernel:   probeKernel,
	WM:       probeWM,
	Packages: probePackages,
	Uptime:   probeUptime,
	Shell:    probeShell,
	Terminal: probeTerminal,
	Battery:  probeBattery,
	Usage:    probeUsage,
}

// Result is the outcome of one probe.
type Result struct {
	Type  Type
	Label string
	Value string
	Err   error
}

// OK reports whether the probe produced a value.
func (r Result) OK() bool {
	return r.Err == nil
}

// Line converts a successful result into a panel line.
func (r Result) Line() render.DataLine {
	return render.DataLine{Label: r.Label, Value: r.Value}
}

// Run executes a single probe and applies the label and case options.
func Run(t Type, src Source, opts Options) Result {
	res := Result{Type: t, Label: Label(t, opts.IconMode)}

	fn, ok := registry[t]
	if !ok {
		res.Err = fmt.Errorf("unknown data type %q", t)
		return res
	}

	value, err := fn(src, opts.Settings)
	value = strings.TrimSpace(value)
	if err == nil && value == "" {
		err = ErrNoData
	}
	if err != nil {
		res.Err = err
		return res
	}

	res.Value = value
	if opts.Lowercase {
		res.Label = strings.ToLower(res.Label)
		res.Value = strings.ToLower(res.Value)
	}
	return res
}

// RunAll executes the probes in order and returns every result, failed ones included.
func RunAll(types []Type, src Source, opts Options) []Result {
	results := make([]Result, len(types))
	for i, t := range types {
		results[i] = Run(t, src, opts)
	}
	return results
}

// Collect executes the probes in order and returns the lines of those that
// succeeded. Failures are logged at debug level and omitted.
func Collect(types []Type, src Source, opts Options, log logger.Logger) []render.DataLine {
	if log == nil {
		log = logger.Noop()
	}
	lines := make([]render.DataLine, 0, len(types))
	for _, res := range RunAll(types, src, opts) {
		if !res.OK() {
			log.Debug("omitting %s: %v", res.Type, res.Err)
			continue
		}
		lines = append(lines, res.Line())
	}
	return lines
}

func probeOS(src Source, s Settings) (string, error) {
	var lastErr error
	for _, path := range []string{"/etc/os-release", "/usr/lib/os-release"} {
		data, err := src.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		name, err := ParseOSRelease(string(data))
		if err != nil {
			lastErr = err
			continue
		}
		return FormatOS(name, src.Machine(), s.RemoveLinux, s.DisplayArchitecture), nil
	}
	return "", lastErr
}

func probeKernel(src Source, s Settings) (string, error) {
	data, err := src.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		out, runErr := src.Run("uname", "-r")
		if runErr != nil {
			return "", err
		}
		data = []byte(out)
	}
	return FormatKernel(string(data), s.KernelFullName), nil
}

func probeWM(src Source, _ Settings) (string, error) {
	if v := src.Getenv("DESKTOP_SESSION"); v != "" {
		return v, nil
	}
	return src.Getenv("XDG_SESSION_DESKTOP"), nil
}

// packageManager lists a command whose output has one line per installed package.
type packageManager struct {
	name string
	args []string
}

var packageManagers = []packageManager{
	{name: "pacman", args: []string{"-Qq"}},
	{name: "dpkg-query", args: []string{"-f", "${binary:Package}\n", "-W"}},
	{name: "rpm", args: []string{"-qa"}},
}

func probePackages(src Source, s Settings) (string, error) {
	for _, pm := range packageManagers {
		if _, err := src.LookPath(pm.name); err != nil {
			continue
		}
		out, err := src.Run(pm.name, pm.args...)
		if err != nil {
			return "", fmt.Errorf("%s failed: %w", pm.name, err)
		}
		value := strconv.Itoa(CountLines(out))
		if s.DisplayPackageManager {
			value += " (" + pm.name + ")"
		}
		return value, nil
	}
	return "", fmt.Errorf("no supported package manager found")
}

func probeUptime(src Source, _ Settings) (string, error) {
	data, err := src.ReadFile("/proc/uptime")
	if err != nil {
		return "", err
	}
	secs, err := ParseUptime(string(data))
	if err != nil {
		return "", err
	}
	return FormatUptime(secs), nil
}

func probeShell(src Source, _ Settings) (string, error) {
	return ShellName(src.Getenv("SHELL")), nil
}

func probeTerminal(src Source, _ Settings) (string, error) {
	return src.Getenv("TERM"), nil
}

func readSysfsInt(src Source, name string) (int64, error) {
	data, err := src.ReadFile(BatteryPath + name)
	if err != nil {
		return 0, err
	}
	return parseSysfsInt(string(data), name)
}

func probeBattery(src Source, _ Settings) (string, error) {
	full, err := readSysfsInt(src, "energy_full")
	if err != nil {
		return "", err
	}
	now, err := readSysfsInt(src, "energy_now")
	if err != nil {
		return "", err
	}
	return FormatBattery(full, now)
}

func probeUsage(src Source, _ Settings) (string, error) {
	power, err := readSysfsInt(src, "power_now")
	if err != nil {
		return "", err
	}
	return FormatPower(power), nil
}
