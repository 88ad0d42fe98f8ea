package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfetch/vfetch/internal/doctor"
	"github.com/vfetch/vfetch/internal/errors"
	"github.com/vfetch/vfetch/internal/ui"
)

// staticCheck returns a fixed result.
type staticCheck struct {
	name     string
	category string
	result   doctor.CheckResult
}

func (s *staticCheck) Name() string            { return s.name }
func (s *staticCheck) Category() string        { return s.category }
func (s *staticCheck) Run() doctor.CheckResult { return s.result }
func (s *staticCheck) Fix() error              { return nil }

func TestCollectChecks(t *testing.T) {
	dir := isolateConfig(t)
	cfgPath := writeFile(t, dir, "config.yaml", "data: [os, kernel]\n")

	checks := collectChecks(cfgPath, debianBox())

	var names []string
	for _, c := range checks {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"config_file", "config_schema", "ascii_image", "probe_os", "probe_kernel"}, names)
}

func TestCollectChecks_InvalidConfigFallsBackToDefaults(t *testing.T) {
	dir := isolateConfig(t)
	cfgPath := writeFile(t, dir, "config.yaml", "data: [gpu]\n")

	checks := collectChecks(cfgPath, debianBox())
	results := doctor.RunAllParallel(checks)

	require.Len(t, results, 3+5, "config checks plus the five default probes")
	assert.Equal(t, doctor.StatusFail, results[1].Status)
	assert.Contains(t, results[1].Message, "gpu")
}

func TestDoctorCommand_Text(t *testing.T) {
	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)
	ui.DisableColors()

	checks := []doctor.Check{
		&staticCheck{"config_file", "CONFIG", doctor.CheckResult{Name: "config_file", Status: doctor.StatusPass, Message: "Config file: /tmp/c.yaml"}},
		&staticCheck{"probe_wm", "PROBES", doctor.CheckResult{Name: "probe_wm", Status: doctor.StatusWarn, Message: "wm: omitted", Suggestion: "Set DESKTOP_SESSION"}},
	}

	var out bytes.Buffer
	require.NoError(t, doctorCommand(&out, checks, false, false), "warnings don't fail")

	s := out.String()
	assert.Contains(t, s, "vfetch Diagnostic Report")
	assert.Contains(t, s, "CONFIG\n  ● Config file: /tmp/c.yaml")
	assert.Contains(t, s, "PROBES\n  ● wm: omitted\n    Set DESKTOP_SESSION")
	assert.Contains(t, s, "✗ 1 issue found")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("CONFIG")), bytes.Index(out.Bytes(), []byte("PROBES")))
}

func TestDoctorCommand_FailureReturnsError(t *testing.T) {
	checks := []doctor.Check{
		&staticCheck{"config_schema", "CONFIG", doctor.CheckResult{Status: doctor.StatusFail, Message: "bad"}},
	}

	var out bytes.Buffer
	err := doctorCommand(&out, checks, false, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestDoctorCommand_JSON(t *testing.T) {
	checks := []doctor.Check{
		&staticCheck{"config_file", "CONFIG", doctor.CheckResult{Name: "config_file", Status: doctor.StatusWarn, Fixable: true}},
		&staticCheck{"probe_os", "PROBES", doctor.CheckResult{Name: "probe_os", Status: doctor.StatusPass}},
		&staticCheck{"probe_kernel", "PROBES", doctor.CheckResult{Name: "probe_kernel", Status: doctor.StatusPass}},
	}

	var out bytes.Buffer
	require.NoError(t, doctorCommand(&out, checks, false, true))

	var env struct {
		Success bool         `json:"success"`
		Data    DoctorOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &env))

	require.Len(t, env.Data.Categories, 2)
	assert.Equal(t, "CONFIG", env.Data.Categories[0].Category)
	assert.Len(t, env.Data.Categories[1].Results, 2)
	assert.Equal(t, SummaryOutput{Tally: doctor.Tally{Pass: 2, Warn: 1, Fixable: 1}}, env.Data.Summary)
	assert.Contains(t, out.String(), `"name": "CONFIG"`)
	assert.Contains(t, out.String(), `"all_clear": false`)
}

func TestDoctorCommand_FixWritesConfig(t *testing.T) {
	home := isolateConfig(t)

	fileCheck := &doctor.ConfigFileCheck{}
	before := fileCheck.Run()
	if before.Status == doctor.StatusPass {
		t.Skip("a config file exists next to the test binary")
	}

	var out bytes.Buffer
	require.NoError(t, doctorCommand(&out, []doctor.Check{fileCheck}, true, false))
	assert.Contains(t, out.String(), "Config file: "+home)
	assert.NotContains(t, out.String(), "--fix")
}
