// Package definition derives a definition string for an accepted term from
// the sentence it was found in.
package definition

import (
	"fmt"
	"regexp"
	"strings"
)

// Definition is a synthesized definition. FromPattern distinguishes a real
// defining clause from the lower-quality context-snippet fallback.
type Definition struct {
	Text        string `json:"text"`
	FromPattern bool   `json:"from_pattern"`
}

// minClauseLength guards against patterns capturing a trivial tail like
// "X is used." yielding an empty definition.
const minClauseLength = 10

const maxSnippetLength = 240

type patternBuilder func(term string) *regexp.Regexp

// Patterns are tried in order; the first whose captured clause is long enough
// wins. Term is interpolated quoted, so regex metacharacters in a term cannot
// break matching.
var clausePatterns = []struct {
	name  string
	build patternBuilder
}{
	{"is_a", func(t string) *regexp.Regexp {
		return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(t) + `\s+(?:is|are)\s+(.+?)(?:\.|$)`)
	}},
	{"colon", func(t string) *regexp.Regexp {
		return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(t) + `\s*[:—]\s*(.+?)(?:\.|$)`)
	}},
	{"refers_to", func(t string) *regexp.Regexp {
		return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(t) + `\s+(?:refers\s+to|means|denotes|describes)\s+(.+?)(?:\.|$)`)
	}},
	{"called", func(t string) *regexp.Regexp {
		return regexp.MustCompile(`(?i)(.+?),?\s+(?:is\s+)?(?:called|known\s+as|referred\s+to\s+as)\s+(?:an?\s+)?` + regexp.QuoteMeta(t))
	}},
}

// Synthesize extracts a defining clause for term from sentence, falling back
// to a bounded context snippet annotated with the source pages.
func Synthesize(term, sentence string, pages []int) Definition {
	sentence = strings.TrimSpace(sentence)
	for _, p := range clausePatterns {
		m := p.build(term).FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		clause := strings.TrimSpace(m[len(m)-1])
		if p.name == "called" {
			clause = strings.TrimSpace(m[1])
		}
		if len(clause) < minClauseLength {
			continue
		}
		text := term + " is " + clause
		if !strings.HasSuffix(text, ".") {
			text += "."
		}
		return Definition{Text: text, FromPattern: true}
	}
	return Definition{Text: contextSnippet(sentence, pages), FromPattern: false}
}

func contextSnippet(sentence string, pages []int) string {
	if len([]rune(sentence)) > maxSnippetLength {
		sentence = string([]rune(sentence)[:maxSnippetLength]) + "…"
	}
	if len(pages) == 0 {
		return sentence
	}
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, fmt.Sprintf("%d", p))
	}
	return fmt.Sprintf("%s (p. %s)", sentence, strings.Join(parts, ", "))
}
