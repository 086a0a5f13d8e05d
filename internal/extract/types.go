package extract

// Page is one page of document text as delivered by the PDF extraction layer.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Candidate is an unvalidated term occurrence. Identical raw text on the same
// page is merged into one candidate with an incremented frequency.
type Candidate struct {
	RawText   string `json:"raw_text"`
	Sentence  string `json:"sentence"`
	Pages     []int  `json:"pages"`
	Frequency int    `json:"frequency"`
}

// AcceptedTerm is a candidate that survived preprocessing and validation,
// with its synthesized definition and provenance.
type AcceptedTerm struct {
	Term        string `json:"term"`
	Definition  string `json:"definition"`
	FromPattern bool   `json:"from_pattern"`
	Sentence    string `json:"sentence"`
	Pages       []int  `json:"pages"`
	Frequency   int    `json:"frequency"`
}

// Result is the outcome of running the pipeline over one document.
type Result struct {
	Accepted         []AcceptedTerm `json:"accepted"`
	RejectedByReason map[string]int `json:"rejected_by_reason"`
	PagesProcessed   int            `json:"pages_processed"`
	PagesSkipped     int            `json:"pages_skipped"`
	LinguisticMode   bool           `json:"linguistic_mode"`
}
