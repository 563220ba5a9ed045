package analyzer

import (
	"encoding/json"
	"strings"
)

// SchemaMarkup point weights. Scoring is page-type-aware: the same markup
// earns different credit on a homepage than on a recipe page.
const (
	schemaMaxPoints          = 25
	schemaHomeOptionalPoints = 20
	schemaArticleFullPoints  = 15
	schemaArticlePartPoints  = 7
	schemaFAQFullPoints      = 10
	schemaFAQPartPoints      = 5
	schemaGenericFullPoints  = 20
	schemaGenericHalfPoints  = 12
	schemaProductPartPoints  = 10
	schemaTopUpFloor         = 15
	schemaTopUpPoints        = 5
)

// checkSchemaMarkup parses every JSON-LD script block, collects the set of
// declared @type values and scores them against what the page type calls
// for. Blocks that fail to parse are skipped, never fatal.
func checkSchemaMarkup(doc Document, pageType PageType, profile Profile) CheckResult {
	result := CheckResult{
		Title:     "Schema Markup",
		MaxPoints: schemaMaxPoints,
	}

	types := collectSchemaTypes(doc)

	switch pageType {
	case PageTypeHomepage:
		// Structured data is a nice-to-have on a homepage; never let its
		// absence generate an actionable recommendation.
		result.IsOptional = true
		if hasSchemaType(types, "organization", "website") {
			result.Points = schemaMaxPoints
			result.Details = append(result.Details, "Organization/WebSite schema found")
		} else {
			result.Points = schemaHomeOptionalPoints
			result.Details = append(result.Details,
				"No Organization/WebSite schema - optional for homepages")
		}
	case PageTypeArticle:
		if hasSchemaType(types, "article", "blogposting", "newsarticle") {
			result.Points += schemaArticleFullPoints
			result.Details = append(result.Details, "Article schema found")
		} else {
			result.Points += schemaArticlePartPoints
			result.Recommendations = append(result.Recommendations,
				"Add Article or BlogPosting structured data to this article")
		}
		if hasSchemaType(types, "faqpage", "question") {
			result.Points += schemaFAQFullPoints
			result.Details = append(result.Details, "FAQ schema found")
		} else {
			result.Points += schemaFAQPartPoints
		}
	case PageTypeRecipe:
		if hasSchemaType(types, "recipe") {
			result.Points = schemaMaxPoints
			result.Details = append(result.Details, "Recipe schema found")
		} else {
			result.Recommendations = append(result.Recommendations,
				"Add Recipe structured data - recipe pages are rarely surfaced without it")
		}
	case PageTypeProduct:
		if hasSchemaType(types, "product") {
			result.Points = schemaMaxPoints
			result.Details = append(result.Details, "Product schema found")
		} else {
			result.Points = schemaProductPartPoints
			result.Recommendations = append(result.Recommendations,
				"Add Product structured data with price and availability")
		}
	default: // content and faq pages
		if len(types) > 0 {
			result.Points = schemaGenericFullPoints
			result.Details = append(result.Details, "Structured data present")
		} else {
			result.Points = schemaGenericHalfPoints
			result.Recommendations = append(result.Recommendations,
				"Add JSON-LD structured data describing the page type")
		}
	}

	// Any structured data at all should never score as harshly as none.
	if len(types) > 0 && result.Points < schemaTopUpFloor {
		result.Points += schemaTopUpPoints
	}
	if result.Points > result.MaxPoints {
		result.Points = result.MaxPoints
	}

	result.Pass = result.Points >= profile.SchemaPassPoints
	return result
}

// collectSchemaTypes returns the set of lowercase @type values declared in
// the page's JSON-LD blocks. A block that is not valid JSON is skipped and
// analysis continues with the remaining blocks.
func collectSchemaTypes(doc Document) map[string]bool {
	types := make(map[string]bool)
	for _, script := range doc.QueryAll(`script[type="application/ld+json"]`) {
		var data any
		if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
			continue
		}
		gatherTypes(data, types)
	}
	return types
}

// gatherTypes walks a decoded JSON-LD value: top-level arrays, @graph
// containers, and @type values that are either a string or a list.
func gatherTypes(data any, types map[string]bool) {
	switch node := data.(type) {
	case []any:
		for _, item := range node {
			gatherTypes(item, types)
		}
	case map[string]any:
		switch declared := node["@type"].(type) {
		case string:
			types[strings.ToLower(declared)] = true
		case []any:
			for _, item := range declared {
				if name, ok := item.(string); ok {
					types[strings.ToLower(name)] = true
				}
			}
		}
		if graph, ok := node["@graph"]; ok {
			gatherTypes(graph, types)
		}
	}
}

func hasSchemaType(types map[string]bool, names ...string) bool {
	for _, name := range names {
		if types[name] {
			return true
		}
	}
	return false
}
