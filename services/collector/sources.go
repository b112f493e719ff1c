package collector

import "regexp"

// price-token patterns shared by the source table. the currency
// pattern deliberately swallows comma digit-grouping so "$12,345.00"
// is judged as a whole instead of being truncated at the comma.
var (
	currencyPattern = regexp.MustCompile(`\$\d[\d,]*\.?\d*`)
	centsPattern    = regexp.MustCompile(`(?i)\d+\.?\d*\s*(?:¢|cents)`)
	perKWhPattern   = regexp.MustCompile(`(?i)\d+\.?\d*\s*per\s*kWh`)
	perMWhPattern   = regexp.MustCompile(`(?i)\d+\.?\d*\s*per\s*MWh`)
)

// hints shared by the distribution utilities that publish rate
// schedules as plain tariff tables
var tariffHints = []string{
	"residential rate", "business rate", "electricity rate",
	"tariff", "price per kwh", "rate schedule",
}

var tariffPatterns = []*regexp.Regexp{currencyPattern, centsPattern, perKWhPattern}

// DefaultSources is the static table of all 13 Canadian provinces and
// territories. Descriptors are immutable, callers must not modify the
// returned slice.
func DefaultSources() []Source {
	return []Source{
		{
			ID:       "alberta",
			Province: "Alberta",
			Provider: "AESO",
			Pages: []Page{
				{URL: "https://www.aeso.ca/reports/price/pool-price/", Category: "pool_price"},
				{URL: "https://www.aeso.ca/reports/price/regulated-rate-option-rro/", Category: "rro"},
			},
			Hints: []string{
				"pool price", "current price", "market price", "rro rate",
				"regulated rate", "electricity price", "energy price",
			},
			Patterns: []*regexp.Regexp{currencyPattern, perMWhPattern},
		},
		{
			ID:       "british_columbia",
			Province: "British Columbia",
			Provider: "BC Hydro",
			Pages: []Page{
				{URL: "https://www.bchydro.com/accounts-billing/rates-energy-use/electricity-rates/residential-rates.html", Category: "residential"},
				{URL: "https://www.bchydro.com/accounts-billing/rates-energy-use/electricity-rates/business-rates.html", Category: "business"},
				{URL: "https://www.bchydro.com/accounts-billing/rates-energy-use/electricity-rates/", Category: "general"},
			},
			Hints: []string{
				"rate", "price", "cost", "charge", "per kWh", "per kW",
				"residential", "business", "electricity", "power",
			},
			Patterns: tariffPatterns,
		},
		{
			ID:       "ontario",
			Province: "Ontario",
			Provider: "IESO",
			Pages: []Page{
				{URL: "https://www.ieso.ca/en/power-data/price-overview", Category: "hoep"},
				{URL: "https://www.ieso.ca/en/power-data/global-adjustment", Category: "global_adjustment"},
			},
			Hints: []string{
				"hoep", "hourly ontario energy price", "global adjustment",
				"ga rate", "electricity price", "market price",
			},
			Patterns: []*regexp.Regexp{currencyPattern, perKWhPattern},
		},
		{
			ID:       "quebec",
			Province: "Quebec",
			Provider: "Hydro-Québec",
			Pages: []Page{
				{URL: "https://www.hydroquebec.com/residential/rates/", Category: "residential"},
				{URL: "https://www.hydroquebec.com/business/rates/", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "manitoba",
			Province: "Manitoba",
			Provider: "Manitoba Hydro",
			Pages: []Page{
				{URL: "https://www.hydro.mb.ca/customer_service/rates/", Category: "residential"},
				{URL: "https://www.hydro.mb.ca/customer_service/rates/", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "saskatchewan",
			Province: "Saskatchewan",
			Provider: "SaskPower",
			Pages: []Page{
				{URL: "https://www.saskpower.com/our-power-future/rates-and-billing/rates", Category: "residential"},
				{URL: "https://www.saskpower.com/our-power-future/rates-and-billing/rates", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "nova_scotia",
			Province: "Nova Scotia",
			Provider: "Nova Scotia Power",
			Pages: []Page{
				{URL: "https://www.nspower.ca/en/home/customer-service/rates-and-billing/rates", Category: "residential"},
				{URL: "https://www.nspower.ca/en/home/customer-service/rates-and-billing/rates", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "new_brunswick",
			Province: "New Brunswick",
			Provider: "NB Power",
			Pages: []Page{
				{URL: "https://www.nbpower.com/en/home/customer-service/rates-and-billing/rates", Category: "residential"},
				{URL: "https://www.nbpower.com/en/home/customer-service/rates-and-billing/rates", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "newfoundland",
			Province: "Newfoundland and Labrador",
			Provider: "Newfoundland Power",
			Pages: []Page{
				{URL: "https://www.nlhydro.com/en/home/customer-service/rates-and-billing/rates", Category: "residential"},
				{URL: "https://www.nlhydro.com/en/home/customer-service/rates-and-billing/rates", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "pei",
			Province: "Prince Edward Island",
			Provider: "Maritime Electric",
			Pages: []Page{
				{URL: "https://www.maritimeelectric.com/en/home/customer-service/rates-and-billing/rates", Category: "residential"},
				{URL: "https://www.maritimeelectric.com/en/home/customer-service/rates-and-billing/rates", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "northwest_territories",
			Province: "Northwest Territories",
			Provider: "NT Power",
			Pages: []Page{
				{URL: "https://www.ntpc.com/en/home/customer-service/rates-and-billing/rates", Category: "residential"},
				{URL: "https://www.ntpc.com/en/home/customer-service/rates-and-billing/rates", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "nunavut",
			Province: "Nunavut",
			Provider: "Qulliq Energy",
			Pages: []Page{
				{URL: "https://www.qec.nu.ca/en/home/customer-service/rates-and-billing/rates", Category: "residential"},
				{URL: "https://www.qec.nu.ca/en/home/customer-service/rates-and-billing/rates", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
		{
			ID:       "yukon",
			Province: "Yukon",
			Provider: "Yukon Energy",
			Pages: []Page{
				{URL: "https://www.yukonenergy.ca/en/home/customer-service/rates-and-billing/rates", Category: "residential"},
				{URL: "https://www.yukonenergy.ca/en/home/customer-service/rates-and-billing/rates", Category: "business"},
			},
			Hints:    tariffHints,
			Patterns: tariffPatterns,
		},
	}
}
