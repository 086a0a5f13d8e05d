package workflows

import (
	"context"
	"errors"
	"testing"

	"termflow/internal/activities"
	"termflow/internal/extract"
	"termflow/internal/glossary"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"
)

func registerActivityName[T any](env *testsuite.TestWorkflowEnvironment, name string, fn T) {
	env.RegisterActivityWithOptions(fn, activity.RegisterOptions{Name: name})
}

func registerDocumentActivities(env *testsuite.TestWorkflowEnvironment) {
	registerActivityName(env, "ComputeDocumentIDActivity", func(context.Context, activities.ComputeDocumentIDInput) (activities.ComputeDocumentIDOutput, error) {
		return activities.ComputeDocumentIDOutput{}, nil
	})
	registerActivityName(env, "UpdateDocumentStatusActivity", func(context.Context, activities.UpdateDocumentStatusInput) error { return nil })
	registerActivityName(env, "ExtractPagesActivity", func(context.Context, activities.ExtractPagesInput) (activities.ExtractPagesOutput, error) {
		return activities.ExtractPagesOutput{}, nil
	})
	registerActivityName(env, "ExtractTermsActivity", func(context.Context, activities.ExtractTermsInput) (activities.ExtractTermsOutput, error) {
		return activities.ExtractTermsOutput{}, nil
	})
	registerActivityName(env, "IngestTermsActivity", func(context.Context, activities.IngestTermsInput) (activities.IngestTermsOutput, error) {
		return activities.IngestTermsOutput{}, nil
	})
	registerActivityName(env, "WriteExtractionReportActivity", func(context.Context, activities.WriteExtractionReportInput) (activities.WriteExtractionReportOutput, error) {
		return activities.WriteExtractionReportOutput{}, nil
	})
}

func TestDocumentProcessWorkflowSuccess(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(DocumentProcessWorkflow)
	registerDocumentActivities(env)

	accepted := []extract.AcceptedTerm{{
		Term:       "Pressure Transmitter",
		Definition: "Pressure Transmitter is a device that measures pressure.",
		Pages:      []int{1},
		Frequency:  1,
	}}
	env.OnActivity("ComputeDocumentIDActivity", mock.Anything, activities.ComputeDocumentIDInput{Path: "/tmp/d.pdf"}).
		Return(activities.ComputeDocumentIDOutput{DocumentID: "doc123"}, nil)
	env.OnActivity("UpdateDocumentStatusActivity", mock.Anything, mock.Anything).Return(nil)
	env.OnActivity("ExtractPagesActivity", mock.Anything, activities.ExtractPagesInput{Path: "/tmp/d.pdf"}).
		Return(activities.ExtractPagesOutput{Pages: []extract.Page{{Number: 1, Text: "text"}}, TotalPages: 1}, nil)
	env.OnActivity("ExtractTermsActivity", mock.Anything, mock.Anything).
		Return(activities.ExtractTermsOutput{Result: extract.Result{
			Accepted:         accepted,
			RejectedByReason: map[string]int{"too short": 2},
			PagesProcessed:   1,
		}}, nil)
	env.OnActivity("IngestTermsActivity", mock.Anything, activities.IngestTermsInput{DocumentID: "doc123", Terms: accepted}).
		Return(activities.IngestTermsOutput{Summary: glossary.IngestSummary{Created: 1}}, nil)
	env.OnActivity("WriteExtractionReportActivity", mock.Anything, mock.Anything).
		Return(activities.WriteExtractionReportOutput{Path: "/tmp/report.json"}, nil)

	env.ExecuteWorkflow(DocumentProcessWorkflow, DocumentProcessInput{Path: "/tmp/d.pdf"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out string
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, "processed", out)
}

func TestDocumentProcessWorkflowNoTextFailsGracefully(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(DocumentProcessWorkflow)
	registerDocumentActivities(env)

	env.OnActivity("ComputeDocumentIDActivity", mock.Anything, mock.Anything).
		Return(activities.ComputeDocumentIDOutput{DocumentID: "doc123"}, nil)
	env.OnActivity("UpdateDocumentStatusActivity", mock.Anything, mock.Anything).Return(nil)
	env.OnActivity("ExtractPagesActivity", mock.Anything, mock.Anything).
		Return(activities.ExtractPagesOutput{}, errors.New("no extractable text found in PDF"))

	env.ExecuteWorkflow(DocumentProcessWorkflow, DocumentProcessInput{Path: "/tmp/d.pdf"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var out string
	require.NoError(t, env.GetWorkflowResult(&out))
	require.Equal(t, "failed", out)
}
