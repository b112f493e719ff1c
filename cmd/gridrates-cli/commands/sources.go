package commands

import (
	"os"
	"strings"

	"gridrates/services/collector"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Prints the configured source table.",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Province", "Provider", "Categories"})

		for _, s := range collector.DefaultSources() {
			categories := make([]string, len(s.Pages))
			for i, p := range s.Pages {
				categories[i] = p.Category
			}
			t.AppendRow(table.Row{s.ID, s.Province, s.Provider, strings.Join(categories, ", ")})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
