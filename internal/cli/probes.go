package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfetch/vfetch/internal/config"
	"github.com/vfetch/vfetch/internal/probe"
	"github.com/vfetch/vfetch/internal/ui"
	"github.com/vfetch/vfetch/internal/util"
)

var (
	probesJSON bool
	probesAll  bool
)

// probesCmd prints probe values without touching the cursor
var probesCmd = &cobra.Command{
	Use:   "probes",
	Short: "List probe values as a table",
	Long: `Run the configured probes and print their labels and values as a plain
table. Nothing is cleared and no cursor escapes are written, so the output
is safe to pipe.

Examples:
  vfetch probes
  vfetch probes --all
  vfetch probes --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return probesCommand(cmd.OutOrStdout(), probe.System{}, cfgFile, probesAll, probesJSON)
	},
}

func init() {
	probesCmd.Flags().BoolVar(&probesJSON, "json", false, "output in JSON format")
	probesCmd.Flags().BoolVar(&probesAll, "all", false, "run every known probe, not just the configured ones")
	rootCmd.AddCommand(probesCmd)
}

// ProbeOutput is one probe in 'vfetch probes --json'.
type ProbeOutput struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Value   string `json:"value,omitempty"`
	Omitted bool   `json:"omitted"`
	Reason  string `json:"reason,omitempty"`
}

func probesCommand(w io.Writer, src probe.Source, configPath string, all, asJSON bool) error {
	results, err := collectProbeResults(src, configPath, all)
	if err != nil {
		if asJSON {
			return WriteJSONFromError(w, err)
		}
		return err
	}

	if asJSON {
		out := make([]ProbeOutput, len(results))
		for i, r := range results {
			out[i] = ProbeOutput{Type: string(r.Type), Label: r.Label, Value: r.Value, Omitted: !r.OK()}
			if !r.OK() {
				out[i].Reason = r.Err.Error()
			}
		}
		return WriteJSONSuccess(w, out)
	}

	writeProbeTable(w, results)
	return nil
}

func collectProbeResults(src probe.Source, configPath string, all bool) ([]probe.Result, error) {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	types := probe.AllTypes
	if !all {
		if types, err = cfg.ProbeTypes(); err != nil {
			return nil, err
		}
	}
	return probe.RunAll(types, src, cfg.ProbeOptions()), nil
}

func writeProbeTable(w io.Writer, results []probe.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No probes configured")
		return
	}

	successStyle := ui.SuccessStyle()
	warnStyle := ui.WarningStyle()
	mutedStyle := ui.MutedStyle()

	rows := make([][]string, 0, len(results))
	var omitted []string
	for _, r := range results {
		if r.OK() {
			rows = append(rows, []string{successStyle.Render(ui.SymbolComplete), string(r.Type), r.Label, r.Value})
			continue
		}
		omitted = append(omitted, string(r.Type))
		rows = append(rows, []string{warnStyle.Render(ui.SymbolSkipped), string(r.Type), r.Label, mutedStyle.Render(r.Err.Error())})
	}

	columns := []ui.TableColumn{{Title: ""}, {Title: "PROBE"}, {Title: "LABEL"}, {Title: "VALUE"}}
	fmt.Fprint(w, ui.RenderSimpleTable(columns, rows))
	fmt.Fprintf(w, "\n%s %s\n", mutedStyle.Render("Omitted:"), util.JoinOrNone(omitted))
}
