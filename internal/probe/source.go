package probe

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Source is everything a probe reads from the machine.
type Source interface {
	ReadFile(path string) ([]byte, error)
	Getenv(key string) string
	// Run executes a command and returns its stdout.
	Run(name string, args ...string) (string, error)
	// LookPath reports whether a command is installed.
	LookPath(name string) (string, error)
	// Machine is the hardware name as printed by uname -m.
	Machine() string
}

// System reads from the local machine.
type System struct{}

func (System) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (System) Getenv(key string) string {
	return os.Getenv(key)
}

func (System) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

func (System) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (s System) Machine() string {
	if data, err := s.ReadFile("/proc/sys/kernel/arch"); err == nil {
		if arch := strings.TrimSpace(string(data)); arch != "" {
			return arch
		}
	}
	return unameMachine(runtime.GOARCH)
}

// unameMachine maps a GOARCH value to the name uname -m would print.
func unameMachine(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "386":
		return "i686"
	case "arm":
		return "armv7l"
	default:
		return goarch
	}
}
