// Package extract locates a plausible electricity rate inside an HTML
// document.
//
// the search is hint driven: a hint narrows the page down to the text
// nodes that talk about rates at all, the locality around each match
// (its enclosing element plus the next few sibling elements) is then
// scanned with the configured price-token patterns, and whatever token
// comes out has to parse into a number inside the plausibility bounds.
// first validated candidate wins, there is no scoring.
package extract

import (
	"regexp"
	"strings"

	"gridrates/lib/htmlutil"
	"gridrates/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// inclusive plausibility bounds applied when a Config leaves
	// Min/Max zero. $0.01-$1.00 per kWh covers energy charges,
	// $10-$1000 per kW covers demand charges.
	DefaultMin = 0.01
	DefaultMax = 1000
)

// how many elements following a hint's enclosing element are scanned
// for a price token. rate tables usually put the value in the cell or
// paragraph right after the label.
const localityWindow = 3

type Config struct {
	// ordered case-insensitive expressions identifying page regions
	// likely to contain the rate, e.g. "residential rate", "tariff"
	Hints []string
	// ordered expressions matching a numeric price token
	Patterns []*regexp.Regexp
	// inclusive bounds a parsed rate must fall within, zero values
	// fall back to DefaultMin/DefaultMax
	Min float64
	Max float64
}

func (c Config) bounds() (float64, float64) {
	min, max := c.Min, c.Max
	if min == 0 && max == 0 {
		min, max = DefaultMin, DefaultMax
	}
	return min, max
}

// Rate searches doc for the first validated price token. It reports
// false when nothing on the page survives validation, it never errors:
// a page without matching hints simply has no rate to offer.
func Rate(doc *goquery.Document, cfg Config) (string, bool) {
	min, max := cfg.bounds()

	for _, hint := range cfg.Hints {
		expr, err := regexp.Compile("(?i)" + hint)
		if err != nil {
			expr = regexp.MustCompile("(?i)" + regexp.QuoteMeta(hint))
		}

		for _, root := range doc.Nodes {
			for _, node := range htmlutil.FindTextNodes(root, expr) {
				if node.Parent == nil {
					continue
				}
				for _, locality := range localities(node.Parent) {
					rate, ok := scanLocality(locality, cfg.Patterns, min, max)
					if ok {
						return rate, true
					}
				}
			}
		}
	}

	return "", false
}

// localities returns the texts inspected for one hint match: the
// enclosing element first, then its structurally-following siblings.
func localities(parent *html.Node) []string {
	texts := []string{htmlutil.GetText(parent)}
	for _, sibling := range htmlutil.NextSiblingElements(parent, localityWindow) {
		texts = append(texts, htmlutil.GetText(sibling))
	}
	return texts
}

// scanLocality applies the patterns in order, each pattern contributes
// at most its first match as a candidate. a rejected candidate moves
// the scan on to the next pattern rather than aborting.
func scanLocality(text string, patterns []*regexp.Regexp, min, max float64) (string, bool) {
	for _, pattern := range patterns {
		candidate := pattern.FindString(text)
		if candidate == "" {
			continue
		}
		candidate = strings.TrimSpace(candidate)

		value, ok := textutil.FirstNumber(candidate)
		if !ok {
			continue
		}
		if value < min || value > max {
			continue
		}
		return candidate, true
	}
	return "", false
}
