package htmlutil

import (
	"bytes"
	"regexp"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// FindTextNodes walks the tree under root and returns every text node
// whose contents match the given expression.
func FindTextNodes(root *html.Node, expr *regexp.Regexp) []*html.Node {
	var matches []*html.Node
	findTextRecursive(root, expr, &matches)
	return matches
}

func findTextRecursive(node *html.Node, expr *regexp.Regexp, out *[]*html.Node) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		if expr.MatchString(node.Data) {
			*out = append(*out, node)
		}
		return
	}
	child := node.FirstChild
	for child != nil {
		findTextRecursive(child, expr, out)
		child = child.NextSibling
	}
}

// NextSiblingElements returns up to max element nodes structurally
// following node, skipping text and comment nodes.
func NextSiblingElements(node *html.Node, max int) []*html.Node {
	var siblings []*html.Node
	current := node.NextSibling
	for current != nil && len(siblings) < max {
		if current.Type == html.ElementNode {
			siblings = append(siblings, current)
		}
		current = current.NextSibling
	}
	return siblings
}
