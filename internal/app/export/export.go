package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tealeg/xlsx"

	"podscribe/internal/app/writer"
)

// Artifact is one transcript artifact parsed back from the output directory.
type Artifact struct {
	Name        string
	SourceFile  string
	GeneratedOn string
	Model       string
	Text        string
}

// WordCount estimates the number of words in the transcript text.
func (a Artifact) WordCount() int {
	return len(strings.Fields(a.Text))
}

// ReadArtifacts parses every transcript artifact in outputDir, sorted
// case-insensitively by name. Files that do not carry the artifact header are
// skipped.
func ReadArtifacts(outputDir string) ([]Artifact, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var artifacts []Artifact
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), writer.ArtifactExtension) {
			continue
		}
		artifact, err := parseArtifact(filepath.Join(outputDir, entry.Name()))
		if err != nil {
			continue
		}
		artifacts = append(artifacts, artifact)
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return strings.ToLower(artifacts[i].Name) < strings.ToLower(artifacts[j].Name)
	})
	return artifacts, nil
}

func parseArtifact(path string) (Artifact, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, err
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) < 5 ||
		!strings.HasPrefix(lines[0], writer.SourcePrefix) ||
		!strings.HasPrefix(lines[1], writer.GeneratedPrefix) ||
		!strings.HasPrefix(lines[2], writer.ModelPrefix) ||
		lines[3] != writer.Separator {
		return Artifact{}, fmt.Errorf("%s is not a transcript artifact", path)
	}

	return Artifact{
		Name:        filepath.Base(path),
		SourceFile:  strings.TrimPrefix(lines[0], writer.SourcePrefix),
		GeneratedOn: strings.TrimPrefix(lines[1], writer.GeneratedPrefix),
		Model:       strings.TrimPrefix(lines[2], writer.ModelPrefix),
		Text:        strings.Join(lines[5:], "\n"),
	}, nil
}

// ToExcel writes artifacts into a single spreadsheet, one row per transcript.
func ToExcel(artifacts []Artifact, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Artifact"
	headerRow.AddCell().Value = "Source File"
	headerRow.AddCell().Value = "Generated On"
	headerRow.AddCell().Value = "Model"
	headerRow.AddCell().Value = "Word Count"
	headerRow.AddCell().Value = "Transcription"

	for _, a := range artifacts {
		row := sheet.AddRow()
		row.AddCell().Value = a.Name
		row.AddCell().Value = a.SourceFile
		row.AddCell().Value = a.GeneratedOn
		row.AddCell().Value = a.Model
		row.AddCell().Value = fmt.Sprint(a.WordCount())
		row.AddCell().Value = a.Text
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
