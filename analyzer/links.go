package analyzer

import (
	"fmt"
	"net/url"
	"strings"
)

// InternalLinking point weights.
const (
	linkMaxPoints     = 10
	linkFullPoints    = 10
	linkPartialPoints = 6
)

// checkInternalLinking counts hyperlinks that resolve to the page's own
// hostname. Malformed hrefs are skipped, not errors.
func checkInternalLinking(doc Document, pageURL *url.URL, profile Profile) CheckResult {
	result := CheckResult{
		Title:     "Internal Linking",
		MaxPoints: linkMaxPoints,
	}

	internal := countInternalLinks(doc, pageURL)
	switch {
	case internal >= 3:
		result.Points = linkFullPoints
		result.Details = append(result.Details, fmt.Sprintf("%d internal links found", internal))
	case internal >= 1:
		result.Points = linkPartialPoints
		result.Recommendations = append(result.Recommendations,
			"Add more internal links to related pages (aim for at least 3)")
	default:
		result.Recommendations = append(result.Recommendations,
			"Add internal links so crawlers can discover related content on your site")
	}

	result.Pass = result.Points >= profile.LinkPassPoints
	return result
}

func countInternalLinks(doc Document, pageURL *url.URL) int {
	count := 0
	for _, anchor := range doc.QueryAll("a[href]") {
		href, ok := anchor.Attr("href")
		if !ok {
			continue
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			continue
		}
		resolved, err := pageURL.Parse(href)
		if err != nil {
			continue
		}
		if resolved.Hostname() != "" && strings.EqualFold(resolved.Hostname(), pageURL.Hostname()) {
			count++
		}
	}
	return count
}
