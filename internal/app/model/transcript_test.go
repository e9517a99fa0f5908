package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSummaryCounts(t *testing.T) {
	summary := RunSummary{
		RunID:      "test-run",
		Discovered: 3,
		Results: []FileResult{
			{File: "a.mp3", Artifact: "a.txt"},
			{File: "b.mp3", Err: errors.New("decode failure")},
			{File: "c.mp3", Artifact: "c.txt"},
		},
	}

	assert.Equal(t, 2, summary.Succeeded())
	assert.Equal(t, []string{"a.txt", "c.txt"}, summary.Artifacts())
}

func TestRunSummaryEmpty(t *testing.T) {
	summary := RunSummary{}
	assert.Equal(t, 0, summary.Succeeded())
	assert.Empty(t, summary.Artifacts())
}

func TestFileResultSucceeded(t *testing.T) {
	assert.True(t, FileResult{File: "a.mp3", Artifact: "a.txt"}.Succeeded())
	assert.False(t, FileResult{File: "a.mp3", Err: errors.New("boom")}.Succeeded())
}
