package reportstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridrates/lib/telemetry"
	"gridrates/lib/timezone"
	"gridrates/services/collector"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func testReport() *collector.Report {
	start := time.Date(2025, 3, 14, 9, 30, 0, 0, timezone.Location)
	report := &collector.Report{
		CollectionStart: start,
		CollectionEnd:   start.Add(time.Second * 42),
		DurationSeconds: 42,
		Results: []collector.Result{
			{
				Source:      "quebec",
				Province:    "Quebec",
				Provider:    "Hydro-Québec",
				CollectedAt: start,
				Status:      collector.StatusSuccess,
				Rates:       map[string]string{"residential": "$0.073"},
				Extracted:   map[string]bool{"residential": true, "business": false},
				Message:     "Collected 1 rates from Hydro-Québec",
			},
		},
	}
	report.Summary = collector.Summary{
		TotalSources:          1,
		SuccessfulCollections: 1,
		RatesCollected:        1,
		CollectionRate:        "100.0%",
		RatesCollectionRate:   "100.0%",
	}
	return report
}

func TestStore(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:reportstore")
	defer cleanup()

	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	_, err = sqlite.Exec(Schema)
	if err != nil {
		t.Fatal(err)
	}

	outputDir := t.TempDir()
	store := NewStore(sqlite, outputDir)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	report := testReport()
	err = store.SaveReport(ctx, report)
	require.NoError(t, err)

	// the JSON dump lands under processed/ keyed by timestamp
	name := filepath.Join(outputDir, "processed", "targeted_rates_20250314_093000.json")
	body, err := os.ReadFile(name)
	require.NoError(t, err)

	var dumped collector.Report
	require.NoError(t, json.Unmarshal(body, &dumped))
	require.Equal(t, "100.0%", dumped.Summary.CollectionRate)
	require.Equal(t, "$0.073", dumped.Results[0].Rates["residential"])

	metas, err := store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	require.Equal(t, "20250314_093000", metas[0].Timestamp)
	require.Equal(t, 1, metas[0].RatesCollected)

	stored, err := store.GetReport(ctx, "20250314_093000")
	require.NoError(t, err)
	if diff := cmp.Diff(report.Summary, stored.Summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, report.Results[0].Rates, stored.Results[0].Rates)
}

func TestStoreWithoutDatabase(t *testing.T) {
	outputDir := t.TempDir()
	store := NewStore(nil, outputDir)

	err := store.SaveReport(context.Background(), testReport())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outputDir, "processed", "targeted_rates_20250314_093000.json"))
	require.NoError(t, err)

	_, err = store.ListReports(context.Background())
	require.ErrorIs(t, err, ErrNoArchive)
	_, err = store.GetReport(context.Background(), "20250314_093000")
	require.ErrorIs(t, err, ErrNoArchive)
}
