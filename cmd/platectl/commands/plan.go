package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"platecore/internal/export"
	"platecore/internal/planner"
	"platecore/internal/printer"
	"platecore/pkg/plate"
)

var (
	planInput   string
	planCSV     string
	planMixCSV  string
	planHTML    string
	planAsJSON  bool
	planQuietly bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a plate layout from a JSON request file",
	Long: `Plan reads a planning request from a JSON file (or stdin with -),
prints the per-plate summary and reagent-mix table, and optionally writes
CSV/HTML renderings next to it.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planInput, "input", "i", "", "request JSON file, or - for stdin (required)")
	planCmd.Flags().StringVar(&planCSV, "layout-csv", "", "write the well layout CSV to this path")
	planCmd.Flags().StringVar(&planMixCSV, "mix-csv", "", "write the reagent-mix CSV to this path")
	planCmd.Flags().StringVar(&planHTML, "html", "", "write the printable HTML page to this path")
	planCmd.Flags().BoolVar(&planAsJSON, "json", false, "print the full result as JSON instead of tables")
	planCmd.Flags().BoolVarP(&planQuietly, "quiet", "q", false, "suppress tables, only write requested files")
	_ = planCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	req, err := readRequest(planInput)
	if err != nil {
		return printer.Error("read request: %v", err)
	}

	res, err := planner.Plan(req)
	if err != nil {
		return printer.Error("plan: %v", err)
	}

	if planAsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if !planQuietly {
		printTables(res)
	}

	for _, out := range []struct {
		path   string
		format export.Format
	}{
		{planCSV, export.FormatCSV},
		{planMixCSV, export.FormatMixCSV},
		{planHTML, export.FormatHTML},
	} {
		if out.path == "" {
			continue
		}
		payload, err := export.Render(out.format, res)
		if err != nil {
			return printer.Error("render %s: %v", out.format, err)
		}
		if err := os.WriteFile(out.path, payload, 0o644); err != nil {
			return printer.Error("write %s: %v", out.path, err)
		}
		printer.Success("wrote %s\n", out.path)
	}

	return nil
}

func readRequest(path string) (planner.Request, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = os.ReadFile("/dev/stdin")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return planner.Request{}, err
	}
	var req planner.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return planner.Request{}, err
	}
	return req, nil
}

func printTables(res planner.Result) {
	printer.Heading("Plates\n")
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATE\tUSED\tEMPTY")
	for _, s := range res.Summary {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", s.Plate, s.Used, s.Empty)
	}
	tw.Flush()

	printer.Heading("\nReagent mix (µL)\n")
	tw = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "TARGET\tCHEMISTRY\tREACTIONS\tEQUIV")
	for _, name := range plate.ReagentNames() {
		fmt.Fprintf(tw, "\t%s", name)
	}
	fmt.Fprintln(tw)
	for _, row := range res.Mix {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f", row.Target, row.Chemistry, row.PlacedReactions, row.MixEquivalentReactions)
		for _, name := range plate.ReagentNames() {
			fmt.Fprintf(tw, "\t%.2f", row.Volumes[name])
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
