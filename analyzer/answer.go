package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// AnswerExtraction point weights. The length-tier cutoffs come from the
// Profile; the weights themselves are structural.
const (
	answerMaxPoints        = 30
	answerHeadingPoints    = 10
	answerQuestionPoints   = 4
	answerDefShortPoints   = 12
	answerDefPartialPoints = 8
	answerDefMinimalPoints = 4
	answerExplainPoints    = 4
)

var explanatoryPatterns = []string{"is a", "are", "refers to", "means"}

// checkAnswerExtraction measures whether the opening content of the page is
// directly quotable as a short answer: a clear H1, ideally phrased as a
// question, followed by a concise definition paragraph.
func checkAnswerExtraction(doc Document, profile Profile) CheckResult {
	result := CheckResult{
		Title:     "Answer Extraction",
		MaxPoints: answerMaxPoints,
	}

	h1 := doc.QueryOne("h1")
	if h1 == nil {
		result.Recommendations = append(result.Recommendations,
			"Add a single clear H1 heading that states the page topic")
	} else {
		result.Points += answerHeadingPoints
		result.Details = append(result.Details, "H1 heading found")

		headline := strings.ToLower(h1.Text())
		if containsAny(headline, "what", "how", "why", "?") {
			result.Points += answerQuestionPoints
			result.Details = append(result.Details, "H1 is phrased as a question")
		} else {
			result.Recommendations = append(result.Recommendations,
				"Phrase the H1 as a question (e.g. \"What is ...?\") so it matches how people ask")
		}
	}

	definition := findDefinitionParagraph(doc, h1)
	if definition == "" {
		result.Recommendations = append(result.Recommendations,
			"Add a short definition paragraph directly below the main heading")
	} else {
		length := utf8.RuneCountInString(definition)
		switch {
		case length <= profile.DefinitionShortLen:
			result.Points += answerDefShortPoints
			result.Details = append(result.Details,
				fmt.Sprintf("Concise definition paragraph (%d chars)", length))
		case length <= profile.DefinitionLongLen:
			result.Points += answerDefPartialPoints
			result.Details = append(result.Details,
				fmt.Sprintf("Definition paragraph is a bit long (%d chars)", length))
		default:
			result.Points += answerDefMinimalPoints
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Shorten the opening paragraph to under %d characters so it can be quoted directly",
					profile.DefinitionShortLen))
		}

		lower := strings.ToLower(definition)
		if containsAny(lower, explanatoryPatterns...) {
			result.Points += answerExplainPoints
			result.Details = append(result.Details, "Definition uses an explanatory pattern")
		}
	}

	result.Pass = result.Points >= profile.AnswerPassPoints
	return result
}

// findDefinitionParagraph walks forward from the H1 through its element
// siblings and returns the text of the first non-empty paragraph. When the
// sibling walk finds nothing (or there is no H1), it falls back to the
// first non-empty paragraph anywhere in the document.
func findDefinitionParagraph(doc Document, h1 Element) string {
	if h1 != nil {
		for sibling := h1.NextSibling(); sibling != nil; sibling = sibling.NextSibling() {
			if sibling.Tag() == "p" {
				if text := sibling.Text(); text != "" {
					return text
				}
			}
		}
	}
	for _, p := range doc.QueryAll("p") {
		if text := p.Text(); text != "" {
			return text
		}
	}
	return ""
}
