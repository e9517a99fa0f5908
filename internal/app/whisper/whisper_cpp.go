package whisper

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LocalLoader loads whisper models for local inference through a whisper.cpp
// binary. Loading resolves and verifies the binary and the ggml model file so
// that a misconfiguration surfaces once, before any audio is processed.
type LocalLoader struct {
	BinaryPath string
	ModelDir   string
	Logger     *zap.Logger
}

func NewLocalLoader(binaryPath, modelDir string, logger *zap.Logger) *LocalLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalLoader{
		BinaryPath: binaryPath,
		ModelDir:   modelDir,
		Logger:     logger,
	}
}

func (l *LocalLoader) Load(size ModelSize) (Model, error) {
	if _, err := ParseModelSize(string(size)); err != nil {
		return nil, err
	}

	binary := l.BinaryPath
	if !strings.ContainsRune(binary, os.PathSeparator) {
		resolved, err := exec.LookPath(binary)
		if err != nil {
			return nil, fmt.Errorf("whisper binary %q not found in PATH: %w", binary, err)
		}
		binary = resolved
	} else if _, err := os.Stat(binary); err != nil {
		return nil, fmt.Errorf("whisper binary not found: %w", err)
	}

	modelPath := filepath.Join(l.ModelDir, fmt.Sprintf("ggml-%s.bin", size))
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file for size %q not found: %w", size, err)
	}

	l.Logger.Info("loaded whisper model",
		zap.String("size", string(size)),
		zap.String("binary", binary),
		zap.String("model", modelPath))

	return &localModel{
		binary:    binary,
		modelPath: modelPath,
		logger:    l.Logger,
	}, nil
}

// localModel shells out to the whisper.cpp binary for each file, asking it to
// emit a plain text transcript next to a temporary output stem.
type localModel struct {
	binary    string
	modelPath string
	logger    *zap.Logger
}

func (m *localModel) Transcribe(audioPath string) (Result, error) {
	tmpDir, err := os.MkdirTemp("", "podscribe-")
	if err != nil {
		return Result{}, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputStem := filepath.Join(tmpDir, "transcript")

	args := []string{
		"-m", m.modelPath,
		"-otxt",
		"-f", audioPath,
		"-of", outputStem,
	}

	m.logger.Debug("running transcription command",
		zap.String("binary", m.binary),
		zap.Strings("args", args))

	command := exec.Command(m.binary, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return Result{}, fmt.Errorf("command execution error: %w, stderr: %s", err, stderr.String())
	}

	content, err := os.ReadFile(outputStem + ".txt")
	if err != nil {
		return Result{}, fmt.Errorf("failed to read output file: %w", err)
	}

	return Result{Text: string(content)}, nil
}
