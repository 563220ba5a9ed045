package analyzer

import (
	"strings"
	"testing"
)

func TestContentStructureFullCredit(t *testing.T) {
	html := strings.Repeat("<h2>Section</h2><h3>Sub</h3>", 4) + "<ul><li>a</li></ul><ol><li>b</li></ol>"
	doc := mustDoc(t, html)

	result := checkContentStructure(doc, LenientProfile)

	if result.Points != result.MaxPoints {
		t.Errorf("Expected maximum %d points, got %d", result.MaxPoints, result.Points)
	}
	if !result.Pass {
		t.Error("Well-structured page should pass")
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("Expected no recommendations, got %v", result.Recommendations)
	}
}

func TestContentStructureFloor(t *testing.T) {
	// No H2s and no lists: scores at the floor with one recommendation
	// for each missing element.
	doc := mustDoc(t, "<h1>Title</h1><p>just prose</p>")

	result := checkContentStructure(doc, LenientProfile)

	if result.Points != 0 {
		t.Errorf("Expected 0 points, got %d", result.Points)
	}
	if result.Pass {
		t.Error("Unstructured page should not pass")
	}
	if len(result.Recommendations) != 2 {
		t.Errorf("Expected 2 recommendations (headings, lists), got %v", result.Recommendations)
	}
}

func TestContentStructureTiers(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		points int
	}{
		{"two h2s", "<h2>a</h2><h2>b</h2>", structureH2MidPoints},
		{"one h2", "<h2>a</h2>", structureH2LowPoints},
		{"one list", "<ul><li>a</li></ul>", structureListMidPoints},
		{"h3 bonus needs two", "<h3>a</h3>", 0},
		{"two h3s", "<h3>a</h3><h3>b</h3>", structureH3BonusPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checkContentStructure(mustDoc(t, tt.html), LenientProfile)
			if result.Points != tt.points {
				t.Errorf("Expected %d points, got %d", tt.points, result.Points)
			}
		})
	}
}
