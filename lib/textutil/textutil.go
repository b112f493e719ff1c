package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeText(text string) string {
	text = strings.Trim(text, " \n\t")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return text
}

// matches the first numeric token in a string, allowing comma
// digit-grouping ("12,345.00") so grouped values parse as a whole
// instead of being truncated at the first comma
var numberRegex = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)

// FirstNumber pulls the first embedded numeric token out of text and
// parses it as a decimal. Returns false when no token parses.
func FirstNumber(text string) (float64, bool) {
	token := numberRegex.FindString(text)
	if token == "" {
		return 0, false
	}
	token = strings.ReplaceAll(token, ",", "")
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
