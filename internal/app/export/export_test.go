package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podscribe/internal/app/model"
	"podscribe/internal/app/writer"
)

func writeArtifact(t *testing.T, dir, source, text string) {
	t.Helper()
	_, err := writer.Write(dir, model.TranscriptResult{
		SourceFileName: source,
		GeneratedAt:    time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		ModelID:        "whisper-base",
		Text:           text,
	})
	require.NoError(t, err)
}

func TestReadArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "zulu.mp3", "last words")
	writeArtifact(t, dir, "Alpha.mp3", "first words\nsecond line")

	// A stray text file without the artifact header must be skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("just notes"), 0o644))

	artifacts, err := ReadArtifacts(dir)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	assert.Equal(t, "Alpha.txt", artifacts[0].Name)
	assert.Equal(t, "Alpha.mp3", artifacts[0].SourceFile)
	assert.Equal(t, "2026-08-28 09:00:00", artifacts[0].GeneratedOn)
	assert.Equal(t, "whisper-base", artifacts[0].Model)
	assert.Equal(t, "first words\nsecond line", artifacts[0].Text)
	assert.Equal(t, 4, artifacts[0].WordCount())

	assert.Equal(t, "zulu.txt", artifacts[1].Name)
	assert.Equal(t, "last words", artifacts[1].Text)
}

func TestReadArtifactsEmptyTranscript(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "silence.mp3", "")

	artifacts, err := ReadArtifacts(dir)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "", artifacts[0].Text)
	assert.Equal(t, 0, artifacts[0].WordCount())
}

func TestReadArtifactsMissingDirectory(t *testing.T) {
	_, err := ReadArtifacts(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestToExcel(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "ep1.mp3", "hello world")

	artifacts, err := ReadArtifacts(dir)
	require.NoError(t, err)

	outFile := filepath.Join(dir, "transcriptions.xlsx")
	require.NoError(t, ToExcel(artifacts, outFile))

	info, err := os.Stat(outFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
