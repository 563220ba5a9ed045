package analyzer

import "testing"

func TestInternalLinkingFullCredit(t *testing.T) {
	// Three internal links (relative, absolute, protocol-relative host
	// match) and one external: exactly 3 count as internal.
	html := `
		<a href="/docs">Docs</a>
		<a href="https://example.com/pricing">Pricing</a>
		<a href="about">About</a>
		<a href="https://other.org/elsewhere">Elsewhere</a>`
	doc := mustDoc(t, html)

	result := checkInternalLinking(doc, mustURL(t, "https://example.com/blog/post"), LenientProfile)

	if result.Points != linkFullPoints {
		t.Errorf("Expected full credit %d, got %d", linkFullPoints, result.Points)
	}
	if !result.Pass {
		t.Error("Three internal links should pass")
	}
}

func TestInternalLinkingPartial(t *testing.T) {
	doc := mustDoc(t, `<a href="/docs">Docs</a><a href="https://other.org/x">X</a>`)

	result := checkInternalLinking(doc, mustURL(t, "https://example.com/page"), LenientProfile)

	if result.Points != linkPartialPoints {
		t.Errorf("Expected partial credit %d, got %d", linkPartialPoints, result.Points)
	}
	if !hasRecommendation(result.Recommendations, "internal links") {
		t.Errorf("Expected more-links recommendation, got %v", result.Recommendations)
	}
}

func TestInternalLinkingNone(t *testing.T) {
	doc := mustDoc(t, `<a href="https://other.org/x">X</a>`)

	result := checkInternalLinking(doc, mustURL(t, "https://example.com/page"), LenientProfile)

	if result.Points != 0 {
		t.Errorf("Expected 0 points, got %d", result.Points)
	}
	if result.Pass {
		t.Error("Page without internal links should not pass")
	}
}

func TestInternalLinkingSkipsMalformed(t *testing.T) {
	// Malformed, fragment-only and empty hrefs are skipped, not counted
	// and never an error.
	html := `
		<a href="%zz">bad escape</a>
		<a href="#section">fragment</a>
		<a href="">empty</a>
		<a href="mailto:team@example.com">mail</a>
		<a href="/ok">ok</a>`
	doc := mustDoc(t, html)

	result := checkInternalLinking(doc, mustURL(t, "https://example.com/page"), LenientProfile)

	if result.Points != linkPartialPoints {
		t.Errorf("Expected exactly one internal link counted, got %d points", result.Points)
	}
}
