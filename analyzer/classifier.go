package analyzer

import (
	"net/url"
	"strings"
)

// Classify assigns exactly one PageType to the page. First match wins, in
// this priority: homepage, article, recipe, product, faq. Matching is
// case-insensitive over the URL and the title/first-H1 text. The caller
// guarantees pageURL is a well-formed absolute URL.
func Classify(doc Document, pageURL *url.URL) PageType {
	rawURL := strings.ToLower(pageURL.String())
	path := strings.ToLower(pageURL.Path)
	heading := headingText(doc)

	switch {
	case path == "" || path == "/" || path == "/index.html" || path == "/home":
		return PageTypeHomepage
	case containsAny(rawURL, "/blog/", "/article/", "/post/", "/news/"):
		return PageTypeArticle
	case strings.Contains(rawURL, "/recipe") || strings.Contains(heading, "recipe"):
		return PageTypeRecipe
	case containsAny(rawURL, "/product", "/shop/") || hasProductMicrodata(doc):
		return PageTypeProduct
	case strings.Contains(rawURL, "/faq") || strings.Contains(heading, "faq"):
		return PageTypeFAQ
	default:
		return PageTypeContent
	}
}

// headingText gathers the title and first H1 as one lowercase string.
func headingText(doc Document) string {
	var parts []string
	if title := doc.QueryOne("title"); title != nil {
		parts = append(parts, title.Text())
	}
	if h1 := doc.QueryOne("h1"); h1 != nil {
		parts = append(parts, h1.Text())
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func hasProductMicrodata(doc Document) bool {
	for _, el := range doc.QueryAll("[itemtype]") {
		if itemType, ok := el.Attr("itemtype"); ok {
			if strings.Contains(strings.ToLower(itemType), "schema.org/product") {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
