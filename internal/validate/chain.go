// Package validate decides whether a preprocessed candidate string is a
// plausible glossary term. The chain is an ordered list of independent
// rejection rules; a candidate is accepted iff every rule passes, and the
// first failing rule supplies the reported reason.
package validate

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Verdict is the outcome of validating one candidate. Reason is empty exactly
// when Accepted is true.
type Verdict struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// BatchReport aggregates verdicts for diagnostics and threshold tuning.
type BatchReport struct {
	Accepted       []string          `json:"accepted"`
	Rejected       map[string]string `json:"rejected"`
	CountsByReason map[string]int    `json:"counts_by_reason"`
}

type Chain struct {
	cfg   Config
	rules []Rule
}

// NewChain builds the rule chain for one profile and language. Wordlists and
// stemmed generic terms are computed once here; the chain itself is immutable
// and safe for concurrent use.
func NewChain(cfg Config) *Chain {
	lists := wordlistsFor(cfg.Language)
	stemLang := snowballLanguage(cfg.Language)
	stem := func(w string) string {
		s, err := snowball.Stem(w, stemLang, true)
		if err != nil {
			return w
		}
		return s
	}
	stemmedGeneric := make(map[string]struct{}, len(lists.generic))
	for w := range lists.generic {
		stemmedGeneric[stem(w)] = struct{}{}
	}
	return &Chain{
		cfg: cfg,
		rules: []Rule{
			lengthRule(cfg),
			numberRule(),
			symbolRule(cfg),
			controlCharRule(),
			wordCountRule(cfg),
			stopwordRule(lists),
			leadingFillerRule(lists),
			fragmentStarterRule(lists),
			morphemeRule(lists),
			genericRule(stemmedGeneric, stem),
			ocrDuplicationRule(),
			artifactRule(),
			hyphenRemnantRule(),
			capitalizationRule(cfg),
		},
	}
}

// Validate runs the chain over one candidate. It never panics: empty or
// garbage input is simply rejected.
func (c *Chain) Validate(raw string) Verdict {
	t := parseTerm(strings.TrimSpace(raw))
	for _, rule := range c.rules {
		if reason := rule.Check(t); reason != "" {
			return Verdict{Accepted: false, Reason: reason}
		}
	}
	return Verdict{Accepted: true}
}

// ValidateWith reports the name of the failing rule alongside the verdict,
// for rule-level diagnostics.
func (c *Chain) ValidateWith(raw string) (Verdict, string) {
	t := parseTerm(strings.TrimSpace(raw))
	for _, rule := range c.rules {
		if reason := rule.Check(t); reason != "" {
			return Verdict{Accepted: false, Reason: reason}, rule.Name
		}
	}
	return Verdict{Accepted: true}, ""
}

// BatchValidate validates a set of candidates and aggregates rejection
// reasons, the shape the quality-review tooling consumes.
func (c *Chain) BatchValidate(terms []string) BatchReport {
	report := BatchReport{
		Accepted:       make([]string, 0, len(terms)),
		Rejected:       make(map[string]string),
		CountsByReason: make(map[string]int),
	}
	for _, t := range terms {
		v := c.Validate(t)
		if v.Accepted {
			report.Accepted = append(report.Accepted, t)
			continue
		}
		report.Rejected[t] = v.Reason
		report.CountsByReason[v.Reason]++
	}
	return report
}

// Rules exposes the ordered rule names for introspection endpoints.
func (c *Chain) Rules() []string {
	names := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		names = append(names, r.Name)
	}
	return names
}
