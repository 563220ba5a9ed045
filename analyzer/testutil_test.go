package analyzer

import (
	"net/url"
	"strings"
	"testing"
)

func mustDoc(t *testing.T, html string) Document {
	t.Helper()
	doc, err := ParseDocument(html)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse URL %q: %v", raw, err)
	}
	return u
}

func hasRecommendation(recs []string, substr string) bool {
	for _, rec := range recs {
		if strings.Contains(rec, substr) {
			return true
		}
	}
	return false
}
