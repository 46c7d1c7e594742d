package journal

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// MaxContentLength caps one day's entry, in bytes.
const MaxContentLength = 64 << 10

var markup = regexp.MustCompile(`(?i)<\s*/?\s*(p|div|br|span|b|i|em|strong|ul|ol|li|h[1-6]|a|blockquote)\b[^>]*>`)

// Normalize prepares journal text for storage. Rich text pasted from
// another editor arrives as HTML; only its text is kept, with block
// elements turned into line breaks.
func Normalize(content string) string {
	if !markup.MatchString(content) {
		return content
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(lineBreak())
	})
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, blockquote").Each(func(_ int, s *goquery.Selection) {
		s.AppendNodes(lineBreak())
	})

	text := strings.ReplaceAll(doc.Text(), "\u00a0", " ")
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

func lineBreak() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
