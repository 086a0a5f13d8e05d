package extract

import (
	"regexp"
	"strings"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

var articlesByLanguage = map[string][]string{
	"en": {"the", "a", "an"},
	"de": {"der", "die", "das", "ein", "eine"},
}

// Preprocessor trims and cleans one candidate string before validation.
type Preprocessor struct {
	articles map[string]struct{}
}

func NewPreprocessor(language string) *Preprocessor {
	arts := articlesByLanguage[language]
	if arts == nil {
		arts = articlesByLanguage["en"]
	}
	m := make(map[string]struct{}, len(arts))
	for _, a := range arts {
		m[a] = struct{}{}
	}
	return &Preprocessor{articles: m}
}

// Preprocess normalizes whitespace, strips one leading article and any
// leading or trailing hyphens. An empty result means the candidate should be
// discarded before validation.
func (p *Preprocessor) Preprocess(raw string) string {
	s := innerWhitespace.ReplaceAllString(strings.TrimSpace(raw), " ")
	if s == "" {
		return ""
	}
	if idx := strings.IndexByte(s, ' '); idx > 0 {
		if _, ok := p.articles[strings.ToLower(s[:idx])]; ok {
			s = s[idx+1:]
		}
	}
	s = strings.Trim(s, "-")
	return strings.TrimSpace(s)
}
