// Package normalize repairs OCR and PDF-encoding damage in extracted page
// text before candidate generation runs. All functions are pure and total:
// worst case the input comes back unchanged.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	cidMarker    = regexp.MustCompile(`\(?cid:\d+\)?`)
	lineBreakHy  = regexp.MustCompile(`(\p{L})-[ \t]*\r?\n[ \t]*(\p{L})`)
	whitespace   = regexp.MustCompile(`\s+`)
	letterWord   = regexp.MustCompile(`\p{L}+`)
	spacedRun    = regexp.MustCompile(`(?:\b\p{L} ){3,}\p{L}\b`)
	vowelPattern = regexp.MustCompile(`[aeiouyAEIOUY]`)
)

// Normalize cleans one page of raw extracted text. Applied in order: unicode
// compatibility normalization, systemic character-doubling fold, cid marker
// removal, line-break de-hyphenation, whitespace collapse, spaced-letter
// rejoin.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	text = norm.NFKC.String(text)
	text = letterWord.ReplaceAllStringFunc(text, foldDoubledWord)
	text = cidMarker.ReplaceAllString(text, " ")
	text = lineBreakHy.ReplaceAllString(text, "$1$2")
	text = whitespace.ReplaceAllString(text, " ")
	text = spacedRun.ReplaceAllStringFunc(text, joinSpacedLetters)
	return strings.TrimSpace(text)
}

// HasSystemicDoubling reports whether s still carries the doubled-character
// OCR pattern: at least 3 consecutive letter pairs whose two letters are
// equal ignoring case. Genuine double letters ("pressure") never form 3
// consecutive pairs.
func HasSystemicDoubling(s string) bool {
	for _, w := range letterWord.FindAllString(s, -1) {
		if pairs, full := doubledPairs([]rune(w)); pairs >= 3 || (full && pairs >= 2) {
			return true
		}
	}
	return false
}

// doubledPairs counts the longest run of consecutive doubled letter pairs
// starting at even offsets, and whether those pairs cover the whole word.
func doubledPairs(r []rune) (longest int, full bool) {
	run := 0
	covered := 0
	for i := 0; i+1 < len(r); i += 2 {
		if unicode.ToLower(r[i]) == unicode.ToLower(r[i+1]) {
			run++
			covered += 2
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest, covered == len(r)
}

// foldDoubledWord collapses a fully doubled word ("Tthhee" -> "The",
// "pprreessssuurree" -> "pressure"). Only whole-word doubling is folded:
// partial matches are too likely to be legitimate double letters.
func foldDoubledWord(w string) string {
	r := []rune(w)
	if len(r) < 4 || len(r)%2 != 0 {
		return w
	}
	pairs, full := doubledPairs(r)
	if !full || pairs < 2 {
		return w
	}
	out := make([]rune, 0, len(r)/2)
	for i := 0; i < len(r); i += 2 {
		out = append(out, r[i])
	}
	return string(out)
}

// joinSpacedLetters rejoins "p r e s s u r e" style OCR output. The run is
// only joined when the result looks like a word (has a vowel) and is not an
// enumeration of uppercase initials.
func joinSpacedLetters(run string) string {
	joined := strings.ReplaceAll(run, " ", "")
	if !vowelPattern.MatchString(joined) {
		return run
	}
	upper := 0
	for _, ch := range joined {
		if unicode.IsUpper(ch) {
			upper++
		}
	}
	if upper > 1 {
		return run
	}
	return joined
}
