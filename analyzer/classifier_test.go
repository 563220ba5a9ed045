package analyzer

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		html string
		want PageType
	}{
		{"root path", "https://example.com/", "<html></html>", PageTypeHomepage},
		{"index html", "https://example.com/index.html", "<html></html>", PageTypeHomepage},
		{"home path", "https://example.com/home", "<html></html>", PageTypeHomepage},
		{"blog path", "https://example.com/blog/my-post", "<html></html>", PageTypeArticle},
		{"news path", "https://example.com/news/today", "<html></html>", PageTypeArticle},
		{"recipe path", "https://example.com/recipes/cake", "<html></html>", PageTypeRecipe},
		{"recipe title", "https://example.com/cake", "<title>Best Cake Recipe</title>", PageTypeRecipe},
		{"product path", "https://example.com/product/42", "<html></html>", PageTypeProduct},
		{"shop path", "https://example.com/shop/widget", "<html></html>", PageTypeProduct},
		{"product microdata", "https://example.com/widget",
			`<div itemscope itemtype="https://schema.org/Product"></div>`, PageTypeProduct},
		{"faq path", "https://example.com/faq", "<html></html>", PageTypeFAQ},
		{"faq heading", "https://example.com/help", "<h1>Shipping FAQ</h1>", PageTypeFAQ},
		{"fallback", "https://example.com/about-us", "<h1>About us</h1>", PageTypeContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(mustDoc(t, tt.html), mustURL(t, tt.url))
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// Recipe is checked before product, so a URL matching both patterns
	// must classify as recipe.
	doc := mustDoc(t, "<html></html>")
	got := Classify(doc, mustURL(t, "https://example.com/product/recipe-box"))
	if got != PageTypeRecipe {
		t.Errorf("Expected recipe for URL matching both patterns, got %q", got)
	}

	// Article outranks recipe.
	got = Classify(doc, mustURL(t, "https://example.com/blog/recipe-roundup"))
	if got != PageTypeArticle {
		t.Errorf("Expected article for blog URL mentioning recipe, got %q", got)
	}

	// Homepage outranks everything, including a recipe title.
	got = Classify(mustDoc(t, "<title>Recipe Hub</title>"), mustURL(t, "https://example.com/"))
	if got != PageTypeHomepage {
		t.Errorf("Expected homepage for root path, got %q", got)
	}
}
