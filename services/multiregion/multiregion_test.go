package multiregion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectUSWithoutKey(t *testing.T) {
	records := CollectUS(context.Background(), "")
	require.Len(t, records, 1)
	require.Equal(t, StatusError, records[0].Status)
	require.Contains(t, records[0].Message, "API key required")
}

func TestCollectUSWithKey(t *testing.T) {
	records := CollectUS(context.Background(), "test-key")
	require.Len(t, records, 4)
	for _, r := range records {
		require.Equal(t, StatusFrameworkReady, r.Status)
		require.Equal(t, "united_states", r.Region)
	}
}

func TestCollectEurope(t *testing.T) {
	records := CollectEurope(context.Background())
	require.Len(t, records, 4)
	for _, r := range records {
		require.Equal(t, StatusFrameworkReady, r.Status)
	}
}

func TestAvailabilitySummary(t *testing.T) {
	summary := AvailabilitySummary()
	require.Equal(t, 2, summary.TotalRegions)
	require.Equal(t, 4, summary.Regions["europe"].Endpoints)
	require.Equal(t, StatusFrameworkReady, summary.Regions["united_states"].Status)
}
