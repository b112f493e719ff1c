package commands

import (
	"fmt"
	"os"
	"sort"

	"gridrates/services/multiregion"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var eiaKey *string

func init() {
	eiaKey = regionsCmd.Flags().String("eia-key", "", "The EIA API key for the US feed stub.")
	rootCmd.AddCommand(regionsCmd)
}

var regionsCmd = &cobra.Command{
	Use:   "regions [--eia-key <key>]",
	Short: "Prints the availability of the US/EU price feed stubs.",
	Run: func(cmd *cobra.Command, args []string) {
		summary := multiregion.AvailabilitySummary()
		fmt.Printf("Regions scoped: %d\n", summary.TotalRegions)
		ids := make([]string, 0, len(summary.Regions))
		for id := range summary.Regions {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			region := summary.Regions[id]
			fmt.Printf("  %s: %s (%d endpoints, %s)\n", id, region.Name, region.Endpoints, region.Status)
		}
		fmt.Println()

		records := multiregion.CollectUS(cmd.Context(), *eiaKey)
		records = append(records, multiregion.CollectEurope(cmd.Context())...)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Region", "Endpoint", "Status", "Message"})
		for _, r := range records {
			t.AppendRow(table.Row{r.Region, r.Endpoint, r.Status, r.Message})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
