package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quotactl/internal/quota"
	"quotactl/pkg/types"
)

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan candidate regions and print model availability",
		Example: "  quotactl scan\n" +
			"  quotactl scan --subscription 00000000-0000-0000-0000-000000000000",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			scanner := quota.NewScanner(opts.az(cfg), cfg.Catalog, opts.log)
			report, err := scanner.Scan(cmd.Context(), cfg.Regions)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func printReport(out io.Writer, report *types.AvailabilityReport) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tMODEL\tKIND\tUSED\tLIMIT\tAVAILABLE")
	for _, ra := range report.Candidates {
		for _, m := range ra.Models {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
				ra.Region, m.Model.UsageName, m.Model.Kind, m.Used, m.Limit, m.Available)
		}
	}
	w.Flush()
	if len(report.Skipped) > 0 {
		fmt.Fprintf(out, "\nskipped (query failed): %s\n", strings.Join(report.Skipped, ", "))
	}
	if len(report.Candidates) == 0 {
		fmt.Fprintln(out, "no region has both chat and embedding quota available")
	}
}
