package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a read-only view over a parsed HTML page. The engine depends
// only on this interface; the goquery adapter below is the single place
// that knows which parser is in use.
type Document interface {
	// QueryOne returns the first element matching the selector, or nil.
	QueryOne(selector string) Element
	// QueryAll returns every element matching the selector, in document order.
	QueryAll(selector string) []Element
}

// Element is a single element node of a Document.
type Element interface {
	// Tag returns the lowercase tag name, e.g. "p".
	Tag() string
	// Text returns the trimmed text content of the element and its children.
	Text() string
	// Attr looks up an attribute value by name.
	Attr(name string) (string, bool)
	// NextSibling returns the next element sibling, or nil at the end.
	NextSibling() Element
}

// ParseDocument parses raw HTML into a Document backed by goquery.
func ParseDocument(html string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &goqueryDocument{doc: doc}, nil
}

type goqueryDocument struct {
	doc *goquery.Document
}

func (d *goqueryDocument) QueryOne(selector string) Element {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	return &goqueryElement{sel: sel}
}

func (d *goqueryDocument) QueryAll(selector string) []Element {
	var elements []Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &goqueryElement{sel: s})
	})
	return elements
}

type goqueryElement struct {
	sel *goquery.Selection
}

func (e *goqueryElement) Tag() string {
	return goquery.NodeName(e.sel)
}

func (e *goqueryElement) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

func (e *goqueryElement) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *goqueryElement) NextSibling() Element {
	next := e.sel.Next()
	if next.Length() == 0 {
		return nil
	}
	return &goqueryElement{sel: next}
}
