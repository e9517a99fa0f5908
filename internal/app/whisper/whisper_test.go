package whisper

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelSize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    ModelSize
		expectError bool
	}{
		{name: "tiny", input: "tiny", expected: SizeTiny},
		{name: "base", input: "base", expected: SizeBase},
		{name: "small", input: "small", expected: SizeSmall},
		{name: "medium", input: "medium", expected: SizeMedium},
		{name: "large", input: "large", expected: SizeLarge},
		{name: "mixed_case", input: "Base", expected: SizeBase},
		{name: "surrounding_whitespace", input: " large ", expected: SizeLarge},
		{name: "unknown", input: "huge", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModelSize(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestModelID(t *testing.T) {
	assert.Equal(t, "whisper-base", SizeBase.ModelID())
	assert.Equal(t, "whisper-large", SizeLarge.ModelID())
}

func TestTranscriptionErrorUnwrap(t *testing.T) {
	cause := errors.New("unsupported codec")
	err := &TranscriptionError{File: "ep1.mp3", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ep1.mp3")
	assert.Contains(t, err.Error(), "unsupported codec")
}

func TestLocalLoaderResolvesBinaryFromPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "whisper-cli"), []byte("#!/bin/sh\n"), 0o755))

	modelDir := filepath.Join(dir, "models")
	require.NoError(t, os.MkdirAll(modelDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(modelDir, "ggml-base.bin"), []byte("ggml"), 0o644))

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	mdl, err := NewLocalLoader("whisper-cli", modelDir, nil).Load(SizeBase)
	require.NoError(t, err)
	assert.NotNil(t, mdl)
}

func TestLocalLoaderBinaryMissingFromPath(t *testing.T) {
	dir := t.TempDir()
	modelDir := filepath.Join(dir, "models")
	require.NoError(t, os.MkdirAll(modelDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(modelDir, "ggml-base.bin"), []byte("ggml"), 0o644))

	t.Setenv("PATH", dir)

	mdl, err := NewLocalLoader("whisper-cli", modelDir, nil).Load(SizeBase)
	require.ErrorContains(t, err, "not found in PATH")
	assert.Nil(t, mdl)
}

func TestLocalLoaderValidation(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "whisper-cli")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755))

	modelDir := filepath.Join(dir, "models")
	require.NoError(t, os.MkdirAll(modelDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(modelDir, "ggml-base.bin"), []byte("ggml"), 0o644))

	tests := []struct {
		name          string
		binaryPath    string
		modelDir      string
		size          ModelSize
		errorContains string
	}{
		{
			name:       "valid_configuration",
			binaryPath: binary,
			modelDir:   modelDir,
			size:       SizeBase,
		},
		{
			name:          "invalid_size",
			binaryPath:    binary,
			modelDir:      modelDir,
			size:          ModelSize("huge"),
			errorContains: "unknown model size",
		},
		{
			name:          "missing_binary",
			binaryPath:    filepath.Join(dir, "nope"),
			modelDir:      modelDir,
			size:          SizeBase,
			errorContains: "whisper binary not found",
		},
		{
			name:          "missing_model_file",
			binaryPath:    binary,
			modelDir:      modelDir,
			size:          SizeLarge,
			errorContains: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLocalLoader(tt.binaryPath, tt.modelDir, nil)
			mdl, err := loader.Load(tt.size)
			if tt.errorContains != "" {
				require.ErrorContains(t, err, tt.errorContains)
				assert.Nil(t, mdl)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, mdl)
		})
	}
}
