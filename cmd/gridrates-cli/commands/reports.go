package commands

import (
	"fmt"
	"os"

	"gridrates/lib/serviceutil"
	"gridrates/services/collector/reportstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var reportsDb *string

func init() {
	reportsDb = reportsCmd.PersistentFlags().String("db", "gridrates.db", "The database reports are archived in.")
	reportsCmd.AddCommand(reportsShowCmd)
	rootCmd.AddCommand(reportsCmd)
}

func openStore() reportstore.Store {
	cfg := readConfig()
	if cfg.Database.File == "" && cfg.Database.Url == "" {
		cfg.Database.File = *reportsDb
	}
	db, err := cfg.Database.OpenDB(reportstore.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open report database", err)
	}
	return reportstore.NewStore(db, "")
}

var reportsCmd = &cobra.Command{
	Use:   "reports [--db <path>]",
	Short: "Lists archived collection reports, newest first.",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		metas, err := store.ListReports(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list reports", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Timestamp", "Started", "Duration", "Sources", "Successful", "With Rates"})
		for _, m := range metas {
			t.AppendRow(table.Row{
				m.Timestamp,
				m.CollectionStart.Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%.2fs", m.DurationSeconds),
				m.TotalSources,
				m.SuccessfulCollections,
				m.RatesCollected,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var reportsShowCmd = &cobra.Command{
	Use:   "show <timestamp>",
	Short: "Prints the full archived report for the given timestamp.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		report, err := store.GetReport(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to load report", err)
		}
		printReport(report)
	},
}
