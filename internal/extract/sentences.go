package extract

import (
	"strings"
	"unicode"
)

// Abbreviations that end in a period but do not end a sentence. Technical
// prose is full of these.
var nonTerminalAbbrevs = map[string]struct{}{
	"e.g": {}, "i.e": {}, "etc": {}, "cf": {}, "fig": {}, "figs": {},
	"eq": {}, "no": {}, "vol": {}, "sec": {}, "ref": {}, "approx": {},
	"max": {}, "min": {}, "vs": {}, "resp": {}, "ca": {},
	"abb": {}, "bzw": {}, "ggf": {}, "z.b": {}, "u.a": {},
}

// SplitSentences splits normalized page text into sentences. It is
// deliberately simple: terminal punctuation followed by whitespace and an
// uppercase letter or digit, with an abbreviation guard.
func SplitSentences(text string) []string {
	out := make([]string, 0, 8)
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '.' && ch != '!' && ch != '?' {
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		if !unicode.IsSpace(runes[i+1]) {
			continue
		}
		next := nextLetter(runes, i+1)
		if next == 0 || (!unicode.IsUpper(next) && !unicode.IsDigit(next)) {
			continue
		}
		if ch == '.' && isAbbreviation(runes, start, i) {
			continue
		}
		s := strings.TrimSpace(string(runes[start : i+1]))
		if s != "" {
			out = append(out, s)
		}
		start = i + 1
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, tail)
	}
	return out
}

func nextLetter(runes []rune, from int) rune {
	for i := from; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) {
			return runes[i]
		}
	}
	return 0
}

// isAbbreviation inspects the word ending at the period at position dot.
func isAbbreviation(runes []rune, start, dot int) bool {
	wordStart := dot
	for wordStart > start && !unicode.IsSpace(runes[wordStart-1]) {
		wordStart--
	}
	word := strings.ToLower(strings.TrimRight(string(runes[wordStart:dot]), "."))
	if len([]rune(word)) == 1 {
		// Single letters are initials ("J. Smith") or list markers.
		return true
	}
	_, ok := nonTerminalAbbrevs[word]
	return ok
}
