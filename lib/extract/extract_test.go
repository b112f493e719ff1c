package extract

import (
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

var testPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d[\d,]*\.?\d*`),
	regexp.MustCompile(`(?i)\d+\.?\d*\s*¢`),
	regexp.MustCompile(`(?i)\d+\.?\d*\s*per\s*kWh`),
}

func document(t *testing.T, body string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + body + "</body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRateInEnclosingElement(t *testing.T) {
	doc := document(t, `<p>Residential rate: $0.094 per kWh</p>`)

	rate, ok := Rate(doc, Config{
		Hints:    []string{"residential rate"},
		Patterns: testPatterns,
	})
	require.True(t, ok)
	require.Equal(t, "$0.094", rate)
}

func TestRateInSiblingElement(t *testing.T) {
	doc := document(t, `
		<table>
			<tr><td>Residential rate</td><td>see below</td><td>9.4¢</td></tr>
		</table>`)

	rate, ok := Rate(doc, Config{
		Hints:    []string{"residential rate"},
		Patterns: testPatterns,
	})
	require.True(t, ok)
	require.Equal(t, "9.4¢", rate)
}

func TestSiblingWindowIsBounded(t *testing.T) {
	doc := document(t, `
		<div>
			<p>tariff</p>
			<p>a</p><p>b</p><p>c</p>
			<p>$0.128 per kWh</p>
		</div>`)

	// the rate sits four siblings away, outside the inspected window
	_, ok := Rate(doc, Config{
		Hints:    []string{"tariff"},
		Patterns: testPatterns,
	})
	require.False(t, ok)
}

func TestNoHintMatches(t *testing.T) {
	doc := document(t, `<p>Outage map and storm updates.</p><p>$0.094</p>`)

	_, ok := Rate(doc, Config{
		Hints:    []string{"residential rate", "tariff"},
		Patterns: testPatterns,
	})
	require.False(t, ok)
}

func TestImplausibleValueRejected(t *testing.T) {
	doc := document(t, `<p>Reference: $12,345.00 discontinued</p>`)

	_, ok := Rate(doc, Config{
		Hints:    []string{"reference"},
		Patterns: testPatterns,
	})
	require.False(t, ok)
}

func TestRejectionContinuesSearch(t *testing.T) {
	doc := document(t, `
		<p>Reference: $12,345.00 discontinued</p>
		<p>Reference: current charge of 9.4¢ per kWh</p>`)

	rate, ok := Rate(doc, Config{
		Hints:    []string{"reference"},
		Patterns: testPatterns,
	})
	require.True(t, ok)
	require.Equal(t, "9.4¢", rate)
}

func TestCustomPlausibilityRange(t *testing.T) {
	doc := document(t, `<p>Pool price averaged $45.23 per MWh</p>`)

	patterns := []*regexp.Regexp{regexp.MustCompile(`\$\d[\d,]*\.?\d*`)}

	_, ok := Rate(doc, Config{
		Hints:    []string{"pool price"},
		Patterns: patterns,
		Min:      100,
		Max:      1000,
	})
	require.False(t, ok)

	rate, ok := Rate(doc, Config{
		Hints:    []string{"pool price"},
		Patterns: patterns,
		Min:      10,
		Max:      1000,
	})
	require.True(t, ok)
	require.Equal(t, "$45.23", rate)
}

func TestFirstHintWins(t *testing.T) {
	doc := document(t, `
		<p>Business rate: $0.128</p>
		<p>Residential rate: $0.094</p>`)

	rate, ok := Rate(doc, Config{
		Hints:    []string{"residential rate", "business rate"},
		Patterns: testPatterns,
	})
	require.True(t, ok)
	require.Equal(t, "$0.094", rate)
}

func TestIdempotence(t *testing.T) {
	doc := document(t, `<p>Residential rate: $0.094 per kWh</p>`)
	cfg := Config{
		Hints:    []string{"residential"},
		Patterns: testPatterns,
	}

	first, ok1 := Rate(doc, cfg)
	second, ok2 := Rate(doc, cfg)
	require.Equal(t, ok1, ok2)
	require.Equal(t, first, second)
}
