package util

import "strings"

// SanitizeText removes bytes that Postgres text columns reject (especially
// NUL / 0x00 from some PDF extractors) plus BOM and replacement characters
// that OCR layers leave behind.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	// NUL bytes are not valid in PostgreSQL text.
	s = strings.ReplaceAll(s, "\x00", "")

	r := make([]rune, 0, len(s))
	for _, ch := range s {
		if ch == '\n' || ch == '\r' || ch == '\t' {
			r = append(r, ch)
			continue
		}
		if ch < 0x20 || ch == '\uFEFF' || ch == '\uFFFD' {
			continue
		}
		r = append(r, ch)
	}
	return strings.TrimSpace(string(r))
}
