package model

import (
	"time"

	"github.com/samber/lo"
)

// TranscriptResult holds the outcome of transcribing a single audio file,
// ready to be persisted as a text artifact. It is written once and never
// mutated afterward.
type TranscriptResult struct {
	SourceFileName string
	GeneratedAt    time.Time
	ModelID        string
	Text           string
}

// FileResult records the per-file outcome of a batch run. Artifact is the
// generated file name on success; Err is non-nil on failure.
type FileResult struct {
	File     string
	Artifact string
	Err      error
}

func (r FileResult) Succeeded() bool {
	return r.Err == nil
}

// RunSummary accumulates per-file results for end-of-run reporting.
type RunSummary struct {
	RunID      string
	Discovered int
	Results    []FileResult
}

// Succeeded returns the number of files that produced an artifact.
func (s RunSummary) Succeeded() int {
	return lo.CountBy(s.Results, FileResult.Succeeded)
}

// Artifacts returns the generated artifact names in processing order.
func (s RunSummary) Artifacts() []string {
	return lo.FilterMap(s.Results, func(r FileResult, _ int) (string, bool) {
		return r.Artifact, r.Succeeded()
	})
}
