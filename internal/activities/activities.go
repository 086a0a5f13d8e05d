package activities

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"termflow/internal/config"
	"termflow/internal/extract"
	"termflow/internal/glossary"
	"termflow/internal/models"
	"termflow/internal/nlp"
	"termflow/internal/storage"
	"termflow/internal/util"
	"termflow/internal/validate"

	"github.com/ledongthuc/pdf"
)

type Activities struct {
	cfg        config.Config
	docRepo    *storage.DocumentRepo
	pipeline   *extract.Pipeline
	aggregator *glossary.Aggregator
}

func New(cfg config.Config, db *storage.DB) (*Activities, error) {
	analyzer := nlp.Select(nlp.ParseAnalyzerList(cfg.NLPAnalyzers))
	pre := extract.NewPreprocessor(cfg.Language)
	pipeline := extract.NewPipeline(
		extract.NewGenerator(analyzer, pre),
		pre,
		validate.NewChain(validate.Profile(cfg.ValidationProfile, cfg.Language)),
		cfg.PageWorkers,
	)
	return &Activities{
		cfg:        cfg,
		docRepo:    storage.NewDocumentRepo(db),
		pipeline:   pipeline,
		aggregator: glossary.NewAggregator(storage.NewTermRepo(db), cfg.Language),
	}, nil
}

func (a *Activities) ListPDFsActivity(ctx context.Context, in ListPDFsInput) (ListPDFsOutput, error) {
	_ = ctx
	entries, err := os.ReadDir(in.InputDir)
	if err != nil {
		return ListPDFsOutput{}, fmt.Errorf("read input dir: %w", err)
	}
	paths := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			paths = append(paths, filepath.Join(in.InputDir, e.Name()))
		}
	}
	sort.Strings(paths)
	return ListPDFsOutput{Paths: paths}, nil
}

func (a *Activities) ComputeDocumentIDActivity(ctx context.Context, in ComputeDocumentIDInput) (ComputeDocumentIDOutput, error) {
	_ = ctx
	f, err := os.Open(in.Path)
	if err != nil {
		return ComputeDocumentIDOutput{}, fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()
	id, err := util.SHA256HexFromReader(f)
	if err != nil {
		return ComputeDocumentIDOutput{}, fmt.Errorf("hash file: %w", err)
	}
	return ComputeDocumentIDOutput{DocumentID: id}, nil
}

// ExtractPagesActivity reads per-page plain text. A page the PDF layer cannot
// extract is skipped and counted, not fatal; the activity fails only when the
// whole document yields no text.
func (a *Activities) ExtractPagesActivity(ctx context.Context, in ExtractPagesInput) (ExtractPagesOutput, error) {
	_ = ctx
	f, r, err := pdf.Open(in.Path)
	if err != nil {
		return ExtractPagesOutput{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	out := ExtractPagesOutput{TotalPages: r.NumPage()}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			out.FailedPages++
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			out.FailedPages++
			continue
		}
		text = util.SanitizeText(text)
		if text == "" {
			out.FailedPages++
			continue
		}
		out.Pages = append(out.Pages, extract.Page{Number: i, Text: text})
	}
	if len(out.Pages) == 0 {
		return ExtractPagesOutput{}, util.ErrNoExtractableText
	}
	return out, nil
}

func (a *Activities) ExtractTermsActivity(ctx context.Context, in ExtractTermsInput) (ExtractTermsOutput, error) {
	timeout := time.Duration(a.cfg.DocumentTimeoutSec) * time.Second
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	res, err := a.pipeline.ExtractTerms(ctx, in.Pages)
	if err != nil && len(res.Accepted) == 0 {
		return ExtractTermsOutput{}, fmt.Errorf("extract terms: %w", err)
	}
	// Partial results on timeout are returned, not discarded.
	return ExtractTermsOutput{Result: res}, nil
}

func (a *Activities) IngestTermsActivity(ctx context.Context, in IngestTermsInput) (IngestTermsOutput, error) {
	sum, err := a.aggregator.IngestTerms(ctx, in.DocumentID, in.Terms)
	if err != nil {
		return IngestTermsOutput{}, err
	}
	return IngestTermsOutput{Summary: sum}, nil
}

func (a *Activities) UpdateDocumentStatusActivity(ctx context.Context, in UpdateDocumentStatusInput) error {
	return a.docRepo.UpsertDocument(ctx, models.Document{
		DocumentID: in.DocumentID,
		Filename:   in.Filename,
		Language:   a.cfg.Language,
		Status:     in.Status,
		FailReason: in.FailReason,
		PageCount:  in.PageCount,
		TermCount:  in.TermCount,
	})
}

func (a *Activities) WriteExtractionReportActivity(ctx context.Context, in WriteExtractionReportInput) (WriteExtractionReportOutput, error) {
	_ = ctx
	path := filepath.Join(a.cfg.DataOutRoot, "documents", in.DocumentID, "extraction_report.json")
	if err := util.WriteJSONAtomic(path, in.Report); err != nil {
		return WriteExtractionReportOutput{}, err
	}
	return WriteExtractionReportOutput{Path: path}, nil
}
