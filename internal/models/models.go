package models

import (
	"sort"
	"time"
)

// Document is one ingested source file. DocumentID is the sha256 of the file
// contents, so re-uploading the same PDF maps onto the same row.
type Document struct {
	DocumentID string    `json:"document_id"`
	Filename   string    `json:"filename"`
	Language   string    `json:"language"`
	Status     string    `json:"status"`
	FailReason string    `json:"fail_reason,omitempty"`
	PageCount  int       `json:"page_count"`
	TermCount  int       `json:"term_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DefinitionEntry is one sourced definition of a glossary term. At most one
// entry per term is primary.
type DefinitionEntry struct {
	Text             string `json:"text"`
	SourceDocumentID string `json:"source_document_id,omitempty"`
	IsPrimary        bool   `json:"is_primary"`
	FromPattern      bool   `json:"from_pattern"`
}

// DocumentRef records how a term appeared in one specific document. A term
// has at most one ref per document; re-processing updates it in place.
type DocumentRef struct {
	DocumentID string `json:"document_id"`
	Frequency  int    `json:"frequency"`
	Pages      []int  `json:"pages"`
	Excerpt    string `json:"excerpt,omitempty"`
}

// GlossaryTerm is the aggregate root of the glossary. Identity is the
// lowercased term plus language; Term keeps the casing it was first seen with.
type GlossaryTerm struct {
	TermID       string            `json:"term_id"`
	Term         string            `json:"term"`
	Language     string            `json:"language"`
	Definitions  []DefinitionEntry `json:"definitions"`
	DocumentRefs []DocumentRef     `json:"document_refs"`
	DomainTags   []string          `json:"domain_tags,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Pages returns the union of page numbers across all document refs, sorted.
func (t *GlossaryTerm) Pages() []int {
	seen := map[int]struct{}{}
	out := make([]int, 0)
	for _, ref := range t.DocumentRefs {
		for _, p := range ref.Pages {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out
}

// PrimaryDefinition returns the primary entry, or the zero value if the term
// has no definitions yet.
func (t *GlossaryTerm) PrimaryDefinition() DefinitionEntry {
	for _, d := range t.Definitions {
		if d.IsPrimary {
			return d
		}
	}
	return DefinitionEntry{}
}
