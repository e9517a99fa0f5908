package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"podscribe/internal/app/model"
)

// Artifact layout constants. The header is fixed; changing it breaks the
// export command's parser.
const (
	ArtifactExtension = ".txt"
	separatorWidth    = 60
	timestampLayout   = "2006-01-02 15:04:05"

	SourcePrefix    = "Transcription of: "
	GeneratedPrefix = "Generated on: "
	ModelPrefix     = "Model used: "
)

// Separator is the line dividing artifact metadata from transcript text.
var Separator = strings.Repeat("=", separatorWidth)

// WriteError wraps a failure to persist a transcript artifact.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write artifact %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ArtifactName maps a source audio file name to its artifact name, replacing
// the audio extension with the text extension.
func ArtifactName(sourceFileName string) string {
	base := strings.TrimSuffix(sourceFileName, filepath.Ext(sourceFileName))
	return base + ArtifactExtension
}

// Write persists a transcript result to outputDir and returns the artifact
// file name. An existing artifact for the same source is overwritten.
func Write(outputDir string, res model.TranscriptResult) (string, error) {
	name := ArtifactName(res.SourceFileName)
	path := filepath.Join(outputDir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", SourcePrefix, res.SourceFileName)
	fmt.Fprintf(&b, "%s%s\n", GeneratedPrefix, res.GeneratedAt.Format(timestampLayout))
	fmt.Fprintf(&b, "%s%s\n", ModelPrefix, res.ModelID)
	b.WriteString(Separator + "\n\n")
	b.WriteString(res.Text)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return name, nil
}
