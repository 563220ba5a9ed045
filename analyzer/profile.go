package analyzer

// Profile groups the scoring thresholds that are tunable rather than
// structural: tier cutoffs for the definition paragraph, per-check pass
// thresholds, and the crawlability point scale. Swapping profiles changes
// how strictly a page is graded without touching any check logic.
type Profile struct {
	Name string

	// Definition-paragraph length tiers (rune count of trimmed text).
	DefinitionShortLen int // full credit up to and including this length
	DefinitionLongLen  int // partial credit up to and including this length

	// Per-check pass thresholds on earned points.
	AnswerPassPoints    int
	StructurePassPoints int
	SchemaPassPoints    int
	LinkPassPoints      int
	CrawlPassPoints     int

	// Crawlability sub-check weights.
	CrawlStatusPoints    int
	CrawlIndexablePoints int
	CrawlCanonicalPoints int
	CrawlTitlePoints     int
}

// LenientProfile grades with the looser cutoffs: a definition paragraph up
// to 250 characters still earns full credit and crawlability is weighted
// on a 20-point scale.
var LenientProfile = Profile{
	Name:                 "lenient",
	DefinitionShortLen:   250,
	DefinitionLongLen:    400,
	AnswerPassPoints:     15,
	StructurePassPoints:  13,
	SchemaPassPoints:     10,
	LinkPassPoints:       6,
	CrawlPassPoints:      6,
	CrawlStatusPoints:    8,
	CrawlIndexablePoints: 4,
	CrawlCanonicalPoints: 4,
	CrawlTitlePoints:     4,
}

// StrictProfile grades with the tighter cutoffs: definitions must fit in
// 150 characters for full credit and pass bars sit higher.
var StrictProfile = Profile{
	Name:                 "strict",
	DefinitionShortLen:   150,
	DefinitionLongLen:    300,
	AnswerPassPoints:     18,
	StructurePassPoints:  15,
	SchemaPassPoints:     12,
	LinkPassPoints:       7,
	CrawlPassPoints:      6,
	CrawlStatusPoints:    4,
	CrawlIndexablePoints: 2,
	CrawlCanonicalPoints: 2,
	CrawlTitlePoints:     2,
}

// DefaultProfile is the grading used when the caller does not choose one.
var DefaultProfile = LenientProfile

// CrawlMaxPoints is the crawlability check maximum under this profile.
func (p Profile) CrawlMaxPoints() int {
	return p.CrawlStatusPoints + p.CrawlIndexablePoints + p.CrawlCanonicalPoints + p.CrawlTitlePoints
}
