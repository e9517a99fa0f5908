package whisper

import (
	"fmt"
	"strings"
)

// ModelSize selects the pre-trained whisper model variant. Larger models are
// more accurate and slower to load and run.
type ModelSize string

const (
	SizeTiny   ModelSize = "tiny"
	SizeBase   ModelSize = "base"
	SizeSmall  ModelSize = "small"
	SizeMedium ModelSize = "medium"
	SizeLarge  ModelSize = "large"
)

// ModelFamily is the model family reported in artifact metadata.
const ModelFamily = "whisper"

// ParseModelSize validates a user-supplied model size string.
func ParseModelSize(s string) (ModelSize, error) {
	switch size := ModelSize(strings.ToLower(strings.TrimSpace(s))); size {
	case SizeTiny, SizeBase, SizeSmall, SizeMedium, SizeLarge:
		return size, nil
	default:
		return "", fmt.Errorf("unknown model size %q (expected tiny, base, small, medium or large)", s)
	}
}

// ModelID returns the identifier recorded in artifact metadata, e.g. "whisper-base".
func (s ModelSize) ModelID() string {
	return ModelFamily + "-" + string(s)
}

// Result is the raw output of a single model invocation.
type Result struct {
	Text string
}

// Model is a loaded speech-to-text model. Transcribe blocks for a duration
// proportional to the audio length and the model size.
type Model interface {
	Transcribe(audioPath string) (Result, error)
}

// Loader loads a model once per run; the returned handle is reused across all
// files because loading is the most expensive single operation in a batch.
type Loader interface {
	Load(size ModelSize) (Model, error)
}

// TranscriptionError wraps a model failure for a single file. It is never
// fatal to a batch; the runner records it and moves on.
type TranscriptionError struct {
	File string
	Err  error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription of %s failed: %v", e.File, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}
