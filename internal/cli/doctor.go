package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vfetch/vfetch/internal/config"
	"github.com/vfetch/vfetch/internal/doctor"
	"github.com/vfetch/vfetch/internal/errors"
	"github.com/vfetch/vfetch/internal/probe"
	"github.com/vfetch/vfetch/internal/ui"
	"github.com/vfetch/vfetch/internal/util"
)

var (
	doctorJSON bool
	doctorFix  bool
)

// doctorCmd diagnoses config, art, terminal, and probes
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and probe issues",
	Long: `Check the config file, the art file, the terminal, and every configured
probe, and report what would keep the panel from drawing as expected.

Examples:
  vfetch doctor
  vfetch doctor --fix
  vfetch doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := collectChecks(cfgFile, probe.System{})
		checks = append(checks, doctor.NewTerminalChecks()...)
		return doctorCommand(cmd.OutOrStdout(), checks, doctorFix, doctorJSON)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
	rootCmd.AddCommand(doctorCmd)
}

// categoryOrder is the order categories appear in the text report.
var categoryOrder = []string{"CONFIG", "ART", "TERMINAL", "PROBES"}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []doctor.Group `json:"categories"`
	Summary    SummaryOutput  `json:"summary"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	doctor.Tally
	AllClear bool `json:"all_clear"`
}

// collectChecks gathers the config and probe checks. Probe checks use the
// loaded config when it is valid, and the defaults otherwise.
func collectChecks(configPath string, src probe.Source) []doctor.Check {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil || config.Validate(cfg) != nil {
		cfg = nil // ConfigSchemaCheck reports why
	}

	checks := doctor.NewConfigChecks(configPath, cfg)

	probeCfg := cfg
	if probeCfg == nil {
		probeCfg = config.DefaultConfig()
	}
	types, err := probeCfg.ProbeTypes()
	if err == nil {
		checks = append(checks, doctor.NewProbeChecks(types, src, probeCfg.ProbeOptions())...)
	}
	return checks
}

// doctorCommand runs the checks and reports. It fails when any check fails.
func doctorCommand(w io.Writer, checks []doctor.Check, fix, asJSON bool) error {
	results := doctor.RunAllParallel(checks)

	if fix {
		results = attemptFixes(checks, results)
	}

	var err error
	if asJSON {
		err = outputDoctorJSON(w, checks, results)
	} else {
		outputDoctorText(w, checks, results, fix)
	}
	if err != nil {
		return err
	}

	if tally := doctor.Count(results); tally.Fail > 0 {
		return errors.New(errors.ErrConfig,
			tally.Summary(),
			"Fix the failing checks above and run 'vfetch doctor' again")
	}
	return nil
}

// attemptFixes tries to fix issues where possible.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if result.NeedsFix() {
			if err := checks[i].Fix(); err == nil {
				// Re-run the check to see if it's fixed
				results[i] = checks[i].Run()
			}
		}
	}
	return results
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	tally := doctor.Count(results)
	return WriteJSONSuccess(w, DoctorOutput{
		Categories: doctor.GroupByCategory(checks, results, categoryOrder),
		Summary:    SummaryOutput{Tally: tally, AllClear: tally.Issues() == 0},
	})
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult, fixed bool) {
	headerStyle := ui.HeaderStyle()
	mutedStyle := ui.MutedStyle()

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("vfetch Diagnostic Report"))
	fmt.Fprintln(w)

	for _, group := range doctor.GroupByCategory(checks, results, categoryOrder) {
		fmt.Fprintln(w, headerStyle.Render(group.Category))
		for _, result := range group.Results {
			renderCheckResult(w, result)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintln(w)

	tally := doctor.Count(results)
	if tally.Issues() == 0 {
		fmt.Fprintf(w, "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), tally.Summary())
	} else {
		fmt.Fprintf(w, "%s %s\n", ui.ErrorStyle().Render(ui.SymbolFail), tally.Summary())

		if fixable := tally.Fixable; fixable > 0 && !fixed {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  Run with %s to fix %d %s automatically.\n",
				mutedStyle.Render("--fix"), fixable, util.Pluralize(fixable, "issue", "issues"))
		}
	}
	fmt.Fprintln(w)
}

// renderCheckResult renders a single check result.
func renderCheckResult(w io.Writer, result doctor.CheckResult) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolComplete
		style = ui.SuccessStyle()
	case doctor.StatusWarn:
		symbol = ui.SymbolComplete // Still shows as done, but with warning styling
		style = ui.WarningStyle()
	default:
		symbol = ui.SymbolFail
		style = ui.ErrorStyle()
	}

	fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(w, "    %s\n", ui.MutedStyle().Render(line))
		}
	}
}
