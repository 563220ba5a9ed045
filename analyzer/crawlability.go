package analyzer

import (
	"fmt"
	"strings"
)

// checkCrawlability verifies the page is technically reachable and
// indexable: HTTP 200, no noindex signal, a canonical link and a non-empty
// title. Each sub-check is scored independently and carries its own
// recommendation on failure. Sub-check weights come from the profile.
func checkCrawlability(doc Document, statusCode int, xRobotsTag string, profile Profile) CheckResult {
	result := CheckResult{
		Title:     "Crawlability",
		MaxPoints: profile.CrawlMaxPoints(),
	}

	if statusCode == 200 {
		result.Points += profile.CrawlStatusPoints
		result.Details = append(result.Details, "Page returns HTTP 200")
	} else {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Fix the HTTP status (currently %d) - only pages returning 200 get indexed", statusCode))
	}

	if hasNoindexSignal(doc, xRobotsTag) {
		result.Recommendations = append(result.Recommendations,
			"Remove the noindex directive (robots meta tag or X-Robots-Tag header)")
	} else {
		result.Points += profile.CrawlIndexablePoints
		result.Details = append(result.Details, "No noindex directive")
	}

	if doc.QueryOne(`link[rel="canonical"]`) != nil {
		result.Points += profile.CrawlCanonicalPoints
		result.Details = append(result.Details, "Canonical link present")
	} else {
		result.Recommendations = append(result.Recommendations,
			"Add a canonical link tag to declare the preferred URL for this page")
	}

	if title := doc.QueryOne("title"); title != nil && title.Text() != "" {
		result.Points += profile.CrawlTitlePoints
		result.Details = append(result.Details, "Title tag present")
	} else {
		result.Recommendations = append(result.Recommendations,
			"Add a descriptive title tag")
	}

	result.Pass = result.Points >= profile.CrawlPassPoints
	return result
}

func hasNoindexSignal(doc Document, xRobotsTag string) bool {
	if robots := doc.QueryOne(`meta[name="robots"]`); robots != nil {
		if content, ok := robots.Attr("content"); ok {
			if strings.Contains(strings.ToLower(content), "noindex") {
				return true
			}
		}
	}
	return strings.Contains(strings.ToLower(xRobotsTag), "noindex")
}
