package htmlutil

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `
<html><body>
	<div>
		<p id="a">Residential rate: <b>$0.094</b> per kWh</p>
		<p id="b">Business rate pending</p>
		<span>unrelated</span>
		<p id="c">Demand charge</p>
	</div>
</body></html>`

func parse(t *testing.T) *html.Node {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestGetText(t *testing.T) {
	root := parse(t)
	nodes := FindTextNodes(root, regexp.MustCompile(`(?i)residential`))
	require.Len(t, nodes, 1)
	require.Equal(t, "Residential rate: $0.094 per kWh", GetText(nodes[0].Parent))
}

func TestFindTextNodesNoMatch(t *testing.T) {
	root := parse(t)
	nodes := FindTextNodes(root, regexp.MustCompile(`(?i)pool price`))
	require.Empty(t, nodes)
}

func TestNextSiblingElements(t *testing.T) {
	root := parse(t)
	nodes := FindTextNodes(root, regexp.MustCompile(`(?i)residential`))
	require.Len(t, nodes, 1)

	siblings := NextSiblingElements(nodes[0].Parent, 3)
	require.Len(t, siblings, 3)
	require.Equal(t, "Business rate pending", GetText(siblings[0]))
	require.Equal(t, "unrelated", GetText(siblings[1]))
	require.Equal(t, "Demand charge", GetText(siblings[2]))

	siblings = NextSiblingElements(nodes[0].Parent, 2)
	require.Len(t, siblings, 2)
}
