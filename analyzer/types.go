package analyzer

import "net/http"

// PageType labels what kind of page is being analyzed. The label drives
// page-type-aware scoring, most notably for schema markup.
type PageType string

const (
	PageTypeHomepage PageType = "homepage"
	PageTypeArticle  PageType = "article"
	PageTypeRecipe   PageType = "recipe"
	PageTypeProduct  PageType = "product"
	PageTypeFAQ      PageType = "faq"
	PageTypeContent  PageType = "content" // default when nothing else matches
)

// PageInput is everything the engine needs about a fetched page.
type PageInput struct {
	HTML       string
	URL        string
	StatusCode int
	Header     http.Header
	FinalURL   string // post-redirect URL; falls back to URL when empty
}

// CheckResult is the outcome of a single rule check.
// Points never exceeds MaxPoints; Pass is a per-check threshold on Points,
// not Points == MaxPoints.
type CheckResult struct {
	Title           string   `json:"title"`
	Points          int      `json:"points"`
	MaxPoints       int      `json:"maxPoints"`
	Pass            bool     `json:"pass"`
	Details         []string `json:"details"`
	Recommendations []string `json:"recommendations"`
	IsOptional      bool     `json:"isOptional,omitempty"`
}

// AnalysisResult is the complete AEO analysis of a single page.
type AnalysisResult struct {
	URL             string        `json:"url"`
	Score           int           `json:"score"`
	PageType        PageType      `json:"pageType"`
	Checks          []CheckResult `json:"checks"`
	Recommendations []string      `json:"recommendations"`
}
