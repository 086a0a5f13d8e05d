package activities

import (
	"termflow/internal/extract"
	"termflow/internal/glossary"
)

type ListPDFsInput struct {
	InputDir string `json:"input_dir"`
}

type ListPDFsOutput struct {
	Paths []string `json:"paths"`
}

type ComputeDocumentIDInput struct {
	Path string `json:"path"`
}

type ComputeDocumentIDOutput struct {
	DocumentID string `json:"document_id"`
}

type ExtractPagesInput struct {
	Path string `json:"path"`
}

type ExtractPagesOutput struct {
	Pages       []extract.Page `json:"pages"`
	FailedPages int            `json:"failed_pages"`
	TotalPages  int            `json:"total_pages"`
}

type ExtractTermsInput struct {
	DocumentID string         `json:"document_id"`
	Pages      []extract.Page `json:"pages"`
}

type ExtractTermsOutput struct {
	Result extract.Result `json:"result"`
}

type IngestTermsInput struct {
	DocumentID string                 `json:"document_id"`
	Terms      []extract.AcceptedTerm `json:"terms"`
}

type IngestTermsOutput struct {
	Summary glossary.IngestSummary `json:"summary"`
}

type UpdateDocumentStatusInput struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Status     string `json:"status"`
	FailReason string `json:"fail_reason,omitempty"`
	PageCount  int    `json:"page_count"`
	TermCount  int    `json:"term_count"`
}

type WriteExtractionReportInput struct {
	DocumentID string `json:"document_id"`
	Report     any    `json:"report"`
}

type WriteExtractionReportOutput struct {
	Path string `json:"path"`
}
