package probe

import (
	"bufio"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ParseOSRelease returns the NAME field of an os-release file, falling back
// to PRETTY_NAME and then ID.
func ParseOSRelease(content string) (string, error) {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || strings.HasPrefix(key, "#") {
			continue
		}
		fields[key] = strings.Trim(value, `"'`)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error scanning os-release: %w", err)
	}

	for _, key := range []string{"NAME", "PRETTY_NAME", "ID"} {
		if v := fields[key]; v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("os-release has no NAME, PRETTY_NAME or ID")
}

var linuxWord = regexp.MustCompile(`(?i)linux`)

// FormatOS applies the removeLinux and displayArchitecture options to a distro name.
func FormatOS(name, machine string, removeLinux, architecture bool) string {
	if removeLinux {
		name = linuxWord.ReplaceAllString(name, "")
	}
	name = strings.TrimRight(name, " \t")
	if architecture && machine != "" {
		name += " " + machine
	}
	return name
}

// FormatKernel trims a kernel release to its version unless full is set,
// e.g. "6.9.1-arch1-1" becomes "6.9.1".
func FormatKernel(release string, full bool) string {
	release = strings.TrimSpace(release)
	if !full {
		release, _, _ = strings.Cut(release, "-")
	}
	return release
}

// ParseUptime reads the first field of /proc/uptime as seconds.
func ParseUptime(content string) (float64, error) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty /proc/uptime")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse uptime %q: %w", fields[0], err)
	}
	return secs, nil
}

// FormatUptime renders seconds as "Nh Mm". Hours are left out when zero;
// minutes are left out when zero unless hours are too.
func FormatUptime(secs float64) string {
	total := int(secs)
	hours := total / 3600
	minutes := (total % 3600) / 60

	var parts []string
	if hours != 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	if minutes != 0 || hours == 0 {
		parts = append(parts, strconv.Itoa(minutes)+"m")
	}
	return strings.Join(parts, " ")
}

func parseSysfsInt(content, name string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(content), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return v, nil
}

// FormatBattery returns the charge level as a whole percentage.
func FormatBattery(energyFull, energyNow int64) (string, error) {
	if energyFull <= 0 {
		return "", fmt.Errorf("battery reports no full capacity")
	}
	return fmt.Sprintf("%d%%", int(float64(energyNow)/float64(energyFull)*100)), nil
}

// FormatPower converts a power_now reading in microwatts to watts.
func FormatPower(microwatts int64) string {
	return fmt.Sprintf("%.2fW", float64(microwatts)/1e6)
}

// CountLines counts the non-blank lines of command output.
func CountLines(output string) int {
	n := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// ShellName returns the program name of a shell path.
func ShellName(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
