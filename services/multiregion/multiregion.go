// Package multiregion describes the US and EU price feeds the project
// has scoped out but not built: both require API credentials (EIA and
// ENTSO-E respectively), so collection stops at a framework record
// describing what would be fetched.
package multiregion

import (
	"context"
	"fmt"
	"log/slog"
)

type Status string

const (
	StatusFrameworkReady Status = "framework_ready"
	StatusError          Status = "error"
)

// Region describes one external feed and the endpoints a full
// implementation would consume.
type Region struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	BaseURL        string            `json:"base_url"`
	Endpoints      map[string]string `json:"endpoints"`
	APIKeyRequired bool              `json:"api_key_required"`
}

// Record is the per-endpoint outcome of a stub collection pass.
type Record struct {
	Region   string `json:"region"`
	Endpoint string `json:"endpoint"`
	Status   Status `json:"status"`
	Message  string `json:"message"`
}

func Regions() []Region {
	return []Region{
		{
			ID:      "united_states",
			Name:    "EIA (Energy Information Administration)",
			BaseURL: "https://api.eia.gov/v2/",
			Endpoints: map[string]string{
				"electricity_prices": "electricity/retail-sales",
				"wholesale_prices":   "electricity/wholesale",
				"demand":             "electricity/demand",
				"generation":         "electricity/generation",
			},
			APIKeyRequired: true,
		},
		{
			ID:      "europe",
			Name:    "ENTSO-E",
			BaseURL: "https://transparency.entsoe.eu/api/",
			Endpoints: map[string]string{
				"day_ahead_prices": "day-ahead-prices",
				"real_time_prices": "real-time-prices",
				"demand":           "demand",
				"generation":       "generation",
			},
			APIKeyRequired: true,
		},
	}
}

func regionByID(id string) Region {
	for _, r := range Regions() {
		if r.ID == id {
			return r
		}
	}
	panic(fmt.Sprintf("unknown region %q", id))
}

// CollectUS reports per-endpoint framework records for the EIA feed.
// Without an API key it reports a single error record pointing at the
// registration page instead.
func CollectUS(ctx context.Context, apiKey string) []Record {
	region := regionByID("united_states")

	if apiKey == "" {
		return []Record{{
			Region:  region.ID,
			Status:  StatusError,
			Message: "EIA API key required. Get one from: https://www.eia.gov/opendata/register.php",
		}}
	}

	var records []Record
	for name, endpoint := range region.Endpoints {
		slog.InfoContext(ctx, "EIA endpoint scoped", "endpoint", name)
		records = append(records, Record{
			Region:   region.ID,
			Endpoint: endpoint,
			Status:   StatusFrameworkReady,
			Message:  fmt.Sprintf("EIA %s collection framework ready", name),
		})
	}
	return records
}

// CollectEurope reports per-endpoint framework records for ENTSO-E.
func CollectEurope(ctx context.Context) []Record {
	region := regionByID("europe")

	var records []Record
	for name, endpoint := range region.Endpoints {
		slog.InfoContext(ctx, "ENTSO-E endpoint scoped", "endpoint", name)
		records = append(records, Record{
			Region:   region.ID,
			Endpoint: endpoint,
			Status:   StatusFrameworkReady,
			Message:  fmt.Sprintf("ENTSO-E %s collection framework ready", name),
		})
	}
	return records
}

type RegionAvailability struct {
	Name      string `json:"name"`
	Status    Status `json:"status"`
	Endpoints int    `json:"endpoints"`
}

type Availability struct {
	TotalRegions int                           `json:"total_regions"`
	Regions      map[string]RegionAvailability `json:"regions"`
}

func AvailabilitySummary() Availability {
	regions := Regions()
	summary := Availability{
		TotalRegions: len(regions),
		Regions:      map[string]RegionAvailability{},
	}
	for _, r := range regions {
		summary.Regions[r.ID] = RegionAvailability{
			Name:      r.Name,
			Status:    StatusFrameworkReady,
			Endpoints: len(r.Endpoints),
		}
	}
	return summary
}
