package wiki

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// contentSelector matches the wiki's main content container.
	contentSelector = "div.mw-parser-output"

	// answerSelector matches answer items: an ordered list that is a direct
	// child of the content container, one list item per question.
	answerSelector = "div.mw-parser-output > ol > li"
)

// ErrAnswersNotFound reports that a page was fetched but the expected
// container/list/item structure is absent. Distinct from a network failure.
var ErrAnswersNotFound = errors.New("no answers found in expected page structure")

// Separator is the paragraph-break fragment emitted between sibling blocks.
const Separator = "\n"

// MathConverter converts a math-markup string to plain text. Must be total:
// malformed markup yields best-effort or empty text, never an error.
type MathConverter interface {
	Text(markup string) string
}

// Extractor pulls answer lists and solution sections out of wiki pages.
type Extractor struct {
	math MathConverter
}

// NewExtractor creates an Extractor using the given math converter for
// inline formula images.
func NewExtractor(math MathConverter) *Extractor {
	return &Extractor{math: math}
}

// Answers returns the ordered answer list from an answer-key page, one
// trimmed string per question. Returns ErrAnswersNotFound when the exact
// container/list/item chain is absent; there are no fallback heuristics.
func (e *Extractor) Answers(doc *goquery.Document) ([]string, error) {
	var answers []string
	doc.Find(answerSelector).Each(func(_ int, li *goquery.Selection) {
		if text := strings.TrimSpace(li.Text()); text != "" {
			answers = append(answers, text)
		}
	})
	if len(answers) == 0 {
		return nil, ErrAnswersNotFound
	}
	return answers, nil
}

// Sections returns the titles of the top-level table-of-contents entries on a
// problem page, in document order. Entries without a display-text child are
// skipped. An empty slice means the page has no table of contents; callers
// treat that as "no solutions available".
func (e *Extractor) Sections(doc *goquery.Document) []string {
	sections := make([]string, 0)
	doc.Find(".toclevel-1").Each(func(_ int, entry *goquery.Selection) {
		text := entry.Find(".toctext").First()
		if text.Length() == 0 {
			return
		}
		sections = append(sections, strings.TrimSpace(text.Text()))
	})
	return sections
}

// Section returns the renderable text fragments of the index-th section of a
// problem page, with a Separator fragment after each sibling block. Inline
// formula images are converted to plain text through the math converter.
// An out-of-range index returns an empty result, never an error: section
// indexes are zero-based over the Sections list.
func (e *Extractor) Section(doc *goquery.Document, index int) []string {
	content := doc.Find(contentSelector).First()
	if content.Length() == 0 {
		return nil
	}

	// The first h2 is always the auto-generated "Contents" heading, never a
	// real section; indexing starts at the second.
	headings := content.Find("h2")
	if index < 0 || index >= headings.Length()-1 {
		return nil
	}
	anchor := headings.Eq(index + 1)

	var fragments []string
	for sibling := anchor.Next(); sibling.Length() > 0; sibling = sibling.Next() {
		name := goquery.NodeName(sibling)
		if name == "h2" {
			break // next section starts here
		}
		switch name {
		case "p", "ul", "ol", "div":
			for _, node := range sibling.Nodes {
				fragments = e.collectChildren(fragments, node)
			}
		}
		fragments = append(fragments, Separator)
	}
	return fragments
}

// HasContent reports whether fragments hold anything beyond paragraph
// separators. A section with no qualifying blocks yields only separators,
// which callers display as "no readable content".
func HasContent(fragments []string) bool {
	for _, f := range fragments {
		if f != Separator {
			return true
		}
	}
	return false
}

// collectChildren walks a block's descendants in document order, converting
// formula images and trimming text nodes.
func (e *Extractor) collectChildren(fragments []string, n *html.Node) []string {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		fragments = e.collectNode(fragments, child)
	}
	return fragments
}

func (e *Extractor) collectNode(fragments []string, n *html.Node) []string {
	if n.Type == html.ElementNode && n.Data == "img" {
		// the alt attribute carries the formula's markup source; the
		// converted fragment is kept even when conversion yields nothing
		converted := e.math.Text(attrValue(n, "alt"))
		return append(fragments, strings.Trim(converted, "\n"))
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			fragments = append(fragments, text)
		}
	}
	return e.collectChildren(fragments, n)
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
