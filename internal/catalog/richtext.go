package catalog

import (
	"regexp"
	"strings"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes markup tags from an HTML-ish description string so that
// free-text search matches content, not tag names.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	return htmlTagRe.ReplaceAllString(s, " ")
}

// FlattenRichText reduces a rich-content node tree to plain text by
// concatenating leaf text runs in document order. Container nodes contribute
// a separating space so adjacent blocks do not run together.
func FlattenRichText(nodes []models.RichNode) string {
	var b strings.Builder
	for _, n := range nodes {
		flattenNode(&b, n)
	}
	return strings.TrimSpace(b.String())
}

func flattenNode(b *strings.Builder, n models.RichNode) {
	if n.Text != "" {
		b.WriteString(n.Text)
	}
	for _, child := range n.Nodes {
		flattenNode(b, child)
	}
	switch n.Type {
	case models.RichNodeParagraph, models.RichNodeHeading, models.RichNodeListItem:
		b.WriteByte(' ')
	}
}
