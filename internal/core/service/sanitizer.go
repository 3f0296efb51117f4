package service

import "github.com/microcosm-cc/bluemonday"

// contentPolicy is the allow-list applied to post content before it is
// stored. Anything outside the list is stripped, not escaped. The set
// mirrors what the rich-text editor can emit: inline formatting, headings,
// lists, quotes, code blocks, links and images.
var contentPolicy = newContentPolicy()

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "span",
		"strong", "b", "em", "i", "u", "s",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li",
		"blockquote", "pre", "code",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireNoFollowOnLinks(true)

	return p
}

// sanitizeContent filters untrusted HTML through the allow-list.
func sanitizeContent(html string) string {
	return contentPolicy.Sanitize(html)
}
