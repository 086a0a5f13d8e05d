package workflows

import "termflow/internal/glossary"

type BatchIngestInput struct {
	InputDir              string `json:"input_dir"`
	MaxConcurrentChildren int    `json:"max_concurrent_children"`
}

type DocumentProcessInput struct {
	Path string `json:"path"`
}

type DocumentStatus struct {
	DocumentID  string `json:"document_id"`
	Path        string `json:"path"`
	CurrentStep string `json:"current_step"`
	Status      string `json:"status"`
	FailReason  string `json:"fail_reason,omitempty"`

	PagesProcessed int                    `json:"pages_processed"`
	PagesSkipped   int                    `json:"pages_skipped"`
	TermsAccepted  int                    `json:"terms_accepted"`
	Rejections     map[string]int         `json:"rejections,omitempty"`
	Summary        glossary.IngestSummary `json:"summary"`
}

type BatchIngestProgress struct {
	Total       int               `json:"total"`
	Done        int               `json:"done"`
	Failed      int               `json:"failed"`
	PerDocument map[string]string `json:"per_document_status"`
}
