package workflows

import (
	"path/filepath"
	"strings"
	"time"

	"termflow/internal/activities"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	QueryGetDocumentStatus = "GetDocumentStatus"
	QueryGetBatchProgress  = "GetBatchProgress"
)

// BatchIngestWorkflow processes every PDF in a directory, a bounded number of
// child workflows at a time.
func BatchIngestWorkflow(ctx workflow.Context, input BatchIngestInput) (string, error) {
	progress := BatchIngestProgress{PerDocument: map[string]string{}}
	if err := workflow.SetQueryHandler(ctx, QueryGetBatchProgress, func() (BatchIngestProgress, error) {
		return progress, nil
	}); err != nil {
		return "", err
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var listOut activities.ListPDFsOutput
	if err := workflow.ExecuteActivity(ctx, "ListPDFsActivity", activities.ListPDFsInput{InputDir: input.InputDir}).Get(ctx, &listOut); err != nil {
		return "", err
	}
	paths := listOut.Paths
	progress.Total = len(paths)

	maxChildren := input.MaxConcurrentChildren
	if maxChildren <= 0 {
		maxChildren = 3
	}
	for i := 0; i < len(paths); i += maxChildren {
		end := i + maxChildren
		if end > len(paths) {
			end = len(paths)
		}
		futures := make([]workflow.ChildWorkflowFuture, 0, end-i)
		childPaths := make([]string, 0, end-i)
		for _, path := range paths[i:end] {
			progress.PerDocument[path] = "processing"
			cwo := workflow.ChildWorkflowOptions{
				WorkflowID: "document-" + sanitizeID(filepath.Base(path)),
			}
			childCtx := workflow.WithChildOptions(ctx, cwo)
			futures = append(futures, workflow.ExecuteChildWorkflow(childCtx, DocumentProcessWorkflow, DocumentProcessInput{Path: path}))
			childPaths = append(childPaths, path)
		}
		for idx, f := range futures {
			var childStatus string
			err := f.Get(ctx, &childStatus)
			path := childPaths[idx]
			if err != nil {
				progress.Failed++
				progress.PerDocument[path] = "failed"
				continue
			}
			if childStatus == "failed" {
				progress.Failed++
			}
			progress.Done++
			progress.PerDocument[path] = childStatus
		}
	}
	return "completed", nil
}

// DocumentProcessWorkflow runs one document through the extraction pipeline
// and into the glossary. A document with no extractable text completes with
// result "failed" instead of failing the workflow.
func DocumentProcessWorkflow(ctx workflow.Context, input DocumentProcessInput) (string, error) {
	status := DocumentStatus{
		Path:        input.Path,
		CurrentStep: "init",
		Status:      "processing",
	}
	if err := workflow.SetQueryHandler(ctx, QueryGetDocumentStatus, func() (DocumentStatus, error) {
		return status, nil
	}); err != nil {
		return "", err
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    2,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)
	filename := filepath.Base(input.Path)

	status.CurrentStep = "compute_id"
	var idOut activities.ComputeDocumentIDOutput
	if err := workflow.ExecuteActivity(ctx, "ComputeDocumentIDActivity", activities.ComputeDocumentIDInput{Path: input.Path}).Get(ctx, &idOut); err != nil {
		return "", err
	}
	status.DocumentID = idOut.DocumentID

	markStatus := func(state, reason string, pages, terms int) {
		_ = workflow.ExecuteActivity(ctx, "UpdateDocumentStatusActivity", activities.UpdateDocumentStatusInput{
			DocumentID: status.DocumentID,
			Filename:   filename,
			Status:     state,
			FailReason: reason,
			PageCount:  pages,
			TermCount:  terms,
		}).Get(ctx, nil)
	}
	markStatus("processing", "", 0, 0)

	status.CurrentStep = "extract_pages"
	var pagesOut activities.ExtractPagesOutput
	if err := workflow.ExecuteActivity(ctx, "ExtractPagesActivity", activities.ExtractPagesInput{Path: input.Path}).Get(ctx, &pagesOut); err != nil {
		status.Status = "failed"
		status.FailReason = failReason(err)
		markStatus("failed", status.FailReason, 0, 0)
		return "failed", nil
	}

	status.CurrentStep = "extract_terms"
	var termsOut activities.ExtractTermsOutput
	if err := workflow.ExecuteActivity(ctx, "ExtractTermsActivity", activities.ExtractTermsInput{
		DocumentID: status.DocumentID,
		Pages:      pagesOut.Pages,
	}).Get(ctx, &termsOut); err != nil {
		status.Status = "failed"
		status.FailReason = failReason(err)
		markStatus("failed", status.FailReason, pagesOut.TotalPages, 0)
		return "failed", nil
	}
	status.PagesProcessed = termsOut.Result.PagesProcessed
	status.PagesSkipped = termsOut.Result.PagesSkipped + pagesOut.FailedPages
	status.TermsAccepted = len(termsOut.Result.Accepted)
	status.Rejections = termsOut.Result.RejectedByReason

	status.CurrentStep = "ingest_terms"
	var ingestOut activities.IngestTermsOutput
	if err := workflow.ExecuteActivity(ctx, "IngestTermsActivity", activities.IngestTermsInput{
		DocumentID: status.DocumentID,
		Terms:      termsOut.Result.Accepted,
	}).Get(ctx, &ingestOut); err != nil {
		status.Status = "failed"
		status.FailReason = failReason(err)
		markStatus("failed", status.FailReason, pagesOut.TotalPages, 0)
		return "failed", nil
	}
	status.Summary = ingestOut.Summary

	status.CurrentStep = "write_report"
	_ = workflow.ExecuteActivity(ctx, "WriteExtractionReportActivity", activities.WriteExtractionReportInput{
		DocumentID: status.DocumentID,
		Report: map[string]any{
			"document_id":        status.DocumentID,
			"filename":           filename,
			"pages_total":        pagesOut.TotalPages,
			"pages_processed":    status.PagesProcessed,
			"pages_skipped":      status.PagesSkipped,
			"terms_accepted":     status.TermsAccepted,
			"rejected_by_reason": status.Rejections,
			"linguistic_mode":    termsOut.Result.LinguisticMode,
			"ingest_summary":     ingestOut.Summary,
			"generated_at":       workflow.Now(ctx),
		},
	}).Get(ctx, nil)

	status.CurrentStep = "done"
	status.Status = "processed"
	markStatus("processed", "", pagesOut.TotalPages, status.TermsAccepted)
	return "processed", nil
}

func sanitizeID(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '-'
		}
	}, s)
}

func failReason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
