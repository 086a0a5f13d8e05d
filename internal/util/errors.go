package util

import "errors"

var (
	ErrNoExtractableText = errors.New("no extractable text found in PDF")
	ErrPageExtraction    = errors.New("page text extraction failed")
	ErrTermConflict      = errors.New("concurrent update on glossary term")
)
