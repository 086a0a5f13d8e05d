package validate

import (
	"regexp"
	"strings"
	"unicode"

	"termflow/internal/normalize"
)

// Stable rejection reasons. Diagnostics tooling aggregates on these strings,
// so treat them as part of the public surface.
const (
	ReasonTooShort        = "too short"
	ReasonTooLong         = "too long"
	ReasonNumber          = "pure number or percentage"
	ReasonSymbol          = "symbol-only or high symbol ratio"
	ReasonStopword        = "stop word"
	ReasonLeadingFiller   = "starts with article or filler word"
	ReasonFragmentStarter = "sentence fragment starter"
	ReasonMorpheme        = "standalone morpheme"
	ReasonGeneric         = "overly generic single word"
	ReasonTooManyWords    = "too many words"
	ReasonControlChars    = "embedded control characters"
	ReasonOCRDuplication  = "OCR duplication detected"
	ReasonArtifact        = "document artifact / section heading"
	ReasonHyphenRemnant   = "broken hyphenation remnant"
	ReasonCapitalization  = "implausible capitalization"
)

// Rule is one independent rejection predicate. Check returns the rejection
// reason, or "" when the term passes.
type Rule struct {
	Name  string
	Check func(t term) string
}

// term is a candidate pre-parsed once so rules stay cheap.
type term struct {
	raw    string
	lower  string
	tokens []string
	runes  []rune
}

func parseTerm(raw string) term {
	return term{
		raw:    raw,
		lower:  strings.ToLower(raw),
		tokens: strings.Fields(raw),
		runes:  []rune(raw),
	}
}

var (
	numberPattern   = regexp.MustCompile(`^[+-]?\d+([.,]\d+)*\s*%?$`)
	bareYear        = regexp.MustCompile(`^(1[5-9]\d{2}|20\d{2})[a-z]?$`)
	sectionNumber   = regexp.MustCompile(`^\d+(\.\d+)+\s`)
	pageRange       = regexp.MustCompile(`(^|\s)(pp?\.?\s*\d+([–-]\d+)?)$|\d+\s*[–-]\s*\d+$`)
	citationMarker  = regexp.MustCompile(`(^|\s)(et\s+al\.?|ibid\.?|op\.\s*cit\.?)(\s|$)`)
	encodingMarker  = regexp.MustCompile(`cid:\d+`)
	hyphenFragStart = regexp.MustCompile(`^\p{L}{1,2}-\p{L}`)
	hyphenFragEnd   = regexp.MustCompile(`\p{L}-\p{L}{1,2}$`)
)

func lengthRule(cfg Config) Rule {
	return Rule{Name: "length_bounds", Check: func(t term) string {
		n := len([]rune(strings.TrimSpace(t.raw)))
		if n < cfg.MinLength {
			return ReasonTooShort
		}
		if n > cfg.MaxLength {
			return ReasonTooLong
		}
		return ""
	}}
}

func numberRule() Rule {
	return Rule{Name: "pure_number", Check: func(t term) string {
		if numberPattern.MatchString(strings.TrimSpace(t.raw)) {
			return ReasonNumber
		}
		return ""
	}}
}

func symbolRule(cfg Config) Rule {
	return Rule{Name: "symbol_ratio", Check: func(t term) string {
		letters, digits, symbols := 0, 0, 0
		for _, r := range t.runes {
			switch {
			case unicode.IsLetter(r):
				letters++
			case unicode.IsDigit(r):
				digits++
			case unicode.IsSpace(r):
			default:
				symbols++
			}
		}
		if letters == 0 && digits == 0 {
			return ReasonSymbol
		}
		total := letters + digits + symbols
		if total > 0 && float64(symbols)/float64(total) > cfg.MaxSymbolRatio {
			return ReasonSymbol
		}
		return ""
	}}
}

func stopwordRule(lists wordlists) Rule {
	return Rule{Name: "stop_word", Check: func(t term) string {
		if len(t.tokens) == 1 {
			if _, ok := lists.stopwords[t.lower]; ok {
				return ReasonStopword
			}
		}
		return ""
	}}
}

func leadingFillerRule(lists wordlists) Rule {
	return Rule{Name: "leading_filler", Check: func(t term) string {
		if len(t.tokens) < 2 {
			return ""
		}
		first := strings.ToLower(t.tokens[0])
		if _, ok := lists.fillers[first]; ok {
			return ReasonLeadingFiller
		}
		return ""
	}}
}

func fragmentStarterRule(lists wordlists) Rule {
	return Rule{Name: "fragment_starter", Check: func(t term) string {
		if len(t.tokens) == 0 {
			return ""
		}
		first := strings.ToLower(t.tokens[0])
		if _, ok := lists.starters[first]; ok {
			return ReasonFragmentStarter
		}
		return ""
	}}
}

func morphemeRule(lists wordlists) Rule {
	return Rule{Name: "standalone_morpheme", Check: func(t term) string {
		stripped := strings.ToLower(strings.Trim(t.raw, "-"))
		if _, ok := lists.morphemes[stripped]; ok {
			return ReasonMorpheme
		}
		return ""
	}}
}

func genericRule(stemmed map[string]struct{}, stem func(string) string) Rule {
	return Rule{Name: "generic_single_word", Check: func(t term) string {
		if len(t.tokens) != 1 {
			return ""
		}
		if _, ok := stemmed[stem(t.lower)]; ok {
			return ReasonGeneric
		}
		return ""
	}}
}

func wordCountRule(cfg Config) Rule {
	return Rule{Name: "word_count_bounds", Check: func(t term) string {
		if len(t.tokens) == 0 {
			return ReasonTooShort
		}
		if len(t.tokens) > cfg.MaxWords {
			return ReasonTooManyWords
		}
		return ""
	}}
}

func controlCharRule() Rule {
	return Rule{Name: "control_characters", Check: func(t term) string {
		if strings.ContainsAny(t.raw, "\n\r\t") {
			return ReasonControlChars
		}
		return ""
	}}
}

func ocrDuplicationRule() Rule {
	return Rule{Name: "ocr_duplication", Check: func(t term) string {
		if normalize.HasSystemicDoubling(t.raw) {
			return ReasonOCRDuplication
		}
		return ""
	}}
}

func artifactRule() Rule {
	return Rule{Name: "document_artifact", Check: func(t term) string {
		s := strings.TrimSpace(t.lower)
		switch {
		case encodingMarker.MatchString(s),
			citationMarker.MatchString(s),
			bareYear.MatchString(s),
			sectionNumber.MatchString(strings.TrimSpace(t.raw)),
			pageRange.MatchString(s):
			return ReasonArtifact
		}
		return ""
	}}
}

func hyphenRemnantRule() Rule {
	return Rule{Name: "hyphen_remnant", Check: func(t term) string {
		s := strings.TrimSpace(t.raw)
		if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
			return ReasonHyphenRemnant
		}
		if strings.Contains(s, "- ") || strings.Contains(s, " -") {
			return ReasonHyphenRemnant
		}
		if hyphenFragStart.MatchString(s) && hyphenFragEnd.MatchString(s) {
			return ReasonHyphenRemnant
		}
		return ""
	}}
}

func capitalizationRule(cfg Config) Rule {
	return Rule{Name: "capitalization_pattern", Check: func(t term) string {
		for _, tok := range t.tokens {
			r := []rune(tok)
			letters := 0
			upper := 0
			transitions := 0
			prevUpper := false
			for i, ch := range r {
				if !unicode.IsLetter(ch) {
					continue
				}
				letters++
				isUpper := unicode.IsUpper(ch)
				if isUpper {
					upper++
				}
				if letters > 1 && i > 0 && isUpper != prevUpper {
					transitions++
				}
				prevUpper = isUpper
			}
			if letters == 0 {
				continue
			}
			if upper == letters && len(t.tokens) == 1 {
				// All-caps single token: acronym length bound applies.
				if letters < cfg.MinAcronymLength || letters > cfg.MaxAcronymLength {
					return ReasonCapitalization
				}
				continue
			}
			if transitions > cfg.MaxCaseTransitions {
				return ReasonCapitalization
			}
		}
		return ""
	}}
}
