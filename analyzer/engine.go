package analyzer

import (
	"fmt"
	"math"
	"net/url"
)

// AnalyzePage runs the full AEO analysis over an already-fetched page using
// the default profile. It is a pure function of its input: no state is kept
// between calls and the same input always yields the same result.
func AnalyzePage(input PageInput) (*AnalysisResult, error) {
	return AnalyzePageWithProfile(input, DefaultProfile)
}

// AnalyzePageWithProfile is AnalyzePage with an explicit grading profile.
// The input URL must be an absolute http(s) URL; beyond that precondition
// no document content is ever an error - an empty page simply scores at
// the floor of every check.
func AnalyzePageWithProfile(input PageInput, profile Profile) (*AnalysisResult, error) {
	pageURL, err := parsePageURL(input)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(input.HTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	pageType := Classify(doc, pageURL)

	checks := []CheckResult{
		checkAnswerExtraction(doc, profile),
		checkContentStructure(doc, profile),
		checkSchemaMarkup(doc, pageType, profile),
		checkInternalLinking(doc, pageURL, profile),
		checkCrawlability(doc, input.StatusCode, input.Header.Get("X-Robots-Tag"), profile),
	}

	return &AnalysisResult{
		URL:             pageURL.String(),
		Score:           aggregateScore(checks),
		PageType:        pageType,
		Checks:          checks,
		Recommendations: collectRecommendations(checks),
	}, nil
}

// parsePageURL validates the input contract and returns the URL every
// check resolves against: the post-redirect URL when one is recorded.
func parsePageURL(input PageInput) (*url.URL, error) {
	raw := input.FinalURL
	if raw == "" {
		raw = input.URL
	}
	if raw == "" {
		return nil, fmt.Errorf("page URL is required")
	}
	pageURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %q: %w", raw, err)
	}
	if pageURL.Scheme != "http" && pageURL.Scheme != "https" {
		return nil, fmt.Errorf("page URL %q must be absolute http or https", raw)
	}
	return pageURL, nil
}

// aggregateScore normalizes the summed check points to a 0-100 scale.
func aggregateScore(checks []CheckResult) int {
	earned, max := 0, 0
	for _, check := range checks {
		earned += check.Points
		max += check.MaxPoints
	}
	if max == 0 {
		return 0
	}
	return int(math.Round(100 * float64(earned) / float64(max)))
}

// collectRecommendations concatenates the recommendations of every failing
// non-optional check, preserving check order. Optional checks never
// contribute, no matter how they scored.
func collectRecommendations(checks []CheckResult) []string {
	var recommendations []string
	for _, check := range checks {
		if check.Pass || check.IsOptional {
			continue
		}
		recommendations = append(recommendations, check.Recommendations...)
	}
	return recommendations
}
