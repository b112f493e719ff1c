package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	require.Equal(t, "Residential rate: $0.094", NormalizeText("  Residential\n\trate:   $0.094 \n"))
	require.Equal(t, "", NormalizeText(" \n\t"))
}

func TestFirstNumber(t *testing.T) {
	cases := []struct {
		text  string
		value float64
		found bool
	}{
		{text: "$0.094 per kWh", value: 0.094, found: true},
		{text: "9.4¢", value: 9.4, found: true},
		{text: "$12,345.00 discontinued", value: 12345, found: true},
		{text: "rate schedule pending", found: false},
		{text: "", found: false},
		{text: "45 per MWh", value: 45, found: true},
	}

	for _, test := range cases {
		value, found := FirstNumber(test.text)
		require.Equal(t, test.found, found, test.text)
		if found {
			require.InDelta(t, test.value, value, 1e-9, test.text)
		}
	}
}
