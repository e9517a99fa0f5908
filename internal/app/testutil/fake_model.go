package testutil

import (
	"sync"

	"podscribe/internal/app/whisper"
)

// FakeModel is a deterministic whisper.Model for tests. Responses and Errors
// are keyed by audio file path; unmatched paths fall back to DefaultText.
type FakeModel struct {
	mu sync.Mutex

	DefaultText string
	Responses   map[string]string
	Errors      map[string]error

	Calls []string
}

func NewFakeModel() *FakeModel {
	return &FakeModel{
		DefaultText: "This is a fake transcription result.",
		Responses:   make(map[string]string),
		Errors:      make(map[string]error),
	}
}

func (m *FakeModel) Transcribe(audioPath string) (whisper.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, audioPath)

	if err, ok := m.Errors[audioPath]; ok {
		return whisper.Result{}, err
	}
	if text, ok := m.Responses[audioPath]; ok {
		return whisper.Result{Text: text}, nil
	}
	return whisper.Result{Text: m.DefaultText}, nil
}

// CallCount returns how many transcriptions were requested.
func (m *FakeModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// FakeLoader hands out a pre-built FakeModel and tracks how often Load was
// called, so tests can assert the model is loaded exactly once per run.
type FakeLoader struct {
	Model      *FakeModel
	LoadErr    error
	LoadCalls  int
	LoadedSize whisper.ModelSize
}

func NewFakeLoader() *FakeLoader {
	return &FakeLoader{Model: NewFakeModel()}
}

func (l *FakeLoader) Load(size whisper.ModelSize) (whisper.Model, error) {
	l.LoadCalls++
	l.LoadedSize = size
	if l.LoadErr != nil {
		return nil, l.LoadErr
	}
	return l.Model, nil
}
