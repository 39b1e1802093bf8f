package facet

import (
	"strings"

	"github.com/matst80/craft-finder/pkg/types"
	"golang.org/x/text/cases"
)

// QueryMatcher is the free text gate: a case-insensitive substring match
// against the project title and the organiser name. A matcher keeps a
// caser and must not be shared between goroutines.
type QueryMatcher struct {
	caser cases.Caser
	query string
}

func NewQueryMatcher(query string) *QueryMatcher {
	m := &QueryMatcher{caser: cases.Fold()}
	if query != "" {
		m.query = m.Fold(query)
	}
	return m
}

// Fold returns the case folded form of text.
func (m *QueryMatcher) Fold(text string) string {
	return m.caser.String(text)
}

func (m *QueryMatcher) IsEmpty() bool {
	return m.query == ""
}

func (m *QueryMatcher) Match(p *types.Project) bool {
	if m.IsEmpty() {
		return true
	}
	for _, text := range SearchableText(p) {
		if strings.Contains(m.Fold(text), m.query) {
			return true
		}
	}
	return false
}

// MatchFolded matches against texts that are already case folded.
func (m *QueryMatcher) MatchFolded(texts ...string) bool {
	if m.IsEmpty() {
		return true
	}
	for _, text := range texts {
		if strings.Contains(text, m.query) {
			return true
		}
	}
	return false
}

// SearchableText lists the project texts the free text gate looks at.
func SearchableText(p *types.Project) []string {
	return []string{p.Title, p.Organiser.Name}
}
