package analyzer

import "fmt"

// ContentStructure point weights.
const (
	structureMaxPoints      = 25
	structureH2HighPoints   = 12
	structureH2MidPoints    = 8
	structureH2LowPoints    = 4
	structureH3BonusPoints  = 3
	structureListHighPoints = 10
	structureListMidPoints  = 6
)

// checkContentStructure rewards sectioning that helps machines comprehend
// the page: enough H2 sections, supporting H3s, and list markup.
func checkContentStructure(doc Document, profile Profile) CheckResult {
	result := CheckResult{
		Title:     "Content Structure",
		MaxPoints: structureMaxPoints,
	}

	h2Count := len(doc.QueryAll("h2"))
	switch {
	case h2Count >= 4:
		result.Points += structureH2HighPoints
		result.Details = append(result.Details, fmt.Sprintf("%d H2 sections found", h2Count))
	case h2Count >= 2:
		result.Points += structureH2MidPoints
		result.Recommendations = append(result.Recommendations,
			"Add more H2 sections to break the content into answerable chunks (aim for 4+)")
	case h2Count >= 1:
		result.Points += structureH2LowPoints
		result.Recommendations = append(result.Recommendations,
			"Only one H2 section found - split the content into more sections")
	default:
		result.Recommendations = append(result.Recommendations,
			"Add H2 section headings so each subtopic can be extracted on its own")
	}

	if len(doc.QueryAll("h3")) >= 2 {
		result.Points += structureH3BonusPoints
		result.Details = append(result.Details, "H3 subsections found")
	}

	listCount := len(doc.QueryAll("ul, ol"))
	switch {
	case listCount >= 2:
		result.Points += structureListHighPoints
		result.Details = append(result.Details, fmt.Sprintf("%d lists found", listCount))
	case listCount == 1:
		result.Points += structureListMidPoints
		result.Details = append(result.Details, "One list found")
	default:
		result.Recommendations = append(result.Recommendations,
			"Use bulleted or numbered lists - answer engines favor list-formatted steps and facts")
	}

	result.Pass = result.Points >= profile.StructurePassPoints
	return result
}
