package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"podscribe/internal/app/util/files"
	"podscribe/internal/app/whisper"
)

// Config carries everything the batch runner needs. It is built once at
// startup and passed in explicitly; nothing reads process-wide state after
// that.
type Config struct {
	ModelSize     whisper.ModelSize `yaml:"model_size"`
	InputDir      string            `yaml:"input_dir"`
	OutputDir     string            `yaml:"output_dir"`
	WhisperBinary string            `yaml:"whisper_binary"`
	ModelDir      string            `yaml:"model_dir"`
}

// Default returns the built-in configuration: the base whisper model, with
// input/, output/ and models/ folders next to the binary and the whisper.cpp
// CLI resolved from PATH.
func Default() Config {
	baseDir := files.ExecutableDir()
	return Config{
		ModelSize:     whisper.SizeBase,
		InputDir:      filepath.Join(baseDir, "input"),
		OutputDir:     filepath.Join(baseDir, "output"),
		WhisperBinary: "whisper-cli",
		ModelDir:      filepath.Join(baseDir, "models"),
	}
}

// Load layers configuration sources: defaults, then an optional
// podscribe.yaml, then environment variables (including a .env file).
func Load() (Config, error) {
	cfg := Default()

	if err := LoadEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.applyFile(configFileCandidates()); err != nil {
		return Config{}, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configFileCandidates() []string {
	return []string{
		"podscribe.yaml",
		filepath.Join(files.ExecutableDir(), "podscribe.yaml"),
	}
}

func (c *Config) applyFile(candidates []string) error {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("error parsing config file %s: %w", path, err)
		}
		return nil
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PODSCRIBE_MODEL_SIZE"); v != "" {
		c.ModelSize = whisper.ModelSize(v)
	}
	if v := os.Getenv("PODSCRIBE_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("PODSCRIBE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("PODSCRIBE_WHISPER_BIN"); v != "" {
		c.WhisperBinary = v
	}
	if v := os.Getenv("PODSCRIBE_MODEL_DIR"); v != "" {
		c.ModelDir = v
	}
}

// Validate rejects configurations the batch runner cannot act on.
func (c *Config) Validate() error {
	size, err := whisper.ParseModelSize(string(c.ModelSize))
	if err != nil {
		return err
	}
	c.ModelSize = size

	if c.InputDir == "" {
		return fmt.Errorf("input directory must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.WhisperBinary == "" {
		return fmt.Errorf("whisper binary must not be empty")
	}
	return nil
}
