package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"podscribe/internal/app/model"
	"podscribe/internal/app/util/files"
	"podscribe/internal/app/whisper"
	"podscribe/internal/app/writer"
	"podscribe/internal/config"
)

// ErrNoInputFiles signals that discovery found no work. It is the only
// condition that terminates a run with a non-zero exit; per-file failures are
// recorded and skipped.
var ErrNoInputFiles = errors.New("no input files found")

// Runner orchestrates one batch: discover, load the model once, then
// transcribe and persist each file sequentially in discovery order.
type Runner struct {
	cfg      config.Config
	loader   whisper.Loader
	logger   *zap.Logger
	progress ProgressConfig
}

func NewRunner(cfg config.Config, loader whisper.Loader, logger *zap.Logger, progress ProgressConfig) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:      cfg,
		loader:   loader,
		logger:   logger,
		progress: progress,
	}
}

// Run executes a full batch against target (empty target means the default
// input directory). The returned summary is valid even when err is
// ErrNoInputFiles.
func (r *Runner) Run(target string) (model.RunSummary, error) {
	summary := model.RunSummary{RunID: uuid.NewString()}
	log := r.logger.With(zap.String("run_id", summary.RunID))

	if err := files.EnsureDir(r.cfg.InputDir); err != nil {
		return summary, fmt.Errorf("failed to create input directory: %w", err)
	}
	if err := files.EnsureDir(r.cfg.OutputDir); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	audioFiles, err := files.Discover(target, r.cfg.InputDir)
	if err != nil {
		return summary, fmt.Errorf("failed to discover audio files: %w", err)
	}
	summary.Discovered = len(audioFiles)

	if len(audioFiles) == 0 {
		log.Info("no audio files discovered", zap.String("target", target))
		return summary, ErrNoInputFiles
	}

	fmt.Printf("\nFound %d MP3 file(s) to transcribe:\n", len(audioFiles))
	for i, f := range audioFiles {
		fmt.Printf("   %d. %s\n", i+1, filepath.Base(f))
	}

	// Loading is the most expensive single step in a run; do it exactly once
	// and only after discovery proved there is work.
	fmt.Printf("\nLoading whisper '%s' model...\n", r.cfg.ModelSize)
	mdl, err := r.loader.Load(r.cfg.ModelSize)
	if err != nil {
		return summary, fmt.Errorf("failed to load model: %w", err)
	}
	fmt.Println("Model loaded successfully.")

	pm := NewProgressManager(r.progress)
	bar := pm.CreateBar(len(audioFiles), "Transcribing")

	for i, audioFile := range audioFiles {
		fmt.Printf("\n[%d/%d] Transcribing: %s\n", i+1, len(audioFiles), filepath.Base(audioFile))

		result := r.processFile(mdl, audioFile)
		summary.Results = append(summary.Results, result)
		bar.Increment()

		if result.Succeeded() {
			fmt.Printf("[OK] Saved transcription to: %s\n", filepath.Join(r.cfg.OutputDir, result.Artifact))
		} else {
			fmt.Printf("[ERROR] %v\n", result.Err)
			log.Warn("file failed, continuing batch",
				zap.String("file", audioFile),
				zap.Error(result.Err))
		}
	}

	pm.Wait()
	return summary, nil
}

// processFile transcribes one file and persists the artifact. Failures are
// returned inside the FileResult, never propagated; one bad file must not
// abort the batch.
func (r *Runner) processFile(mdl whisper.Model, audioFile string) model.FileResult {
	result := model.FileResult{File: audioFile}

	out, err := mdl.Transcribe(audioFile)
	if err != nil {
		result.Err = &whisper.TranscriptionError{File: audioFile, Err: err}
		return result
	}

	res := model.TranscriptResult{
		SourceFileName: filepath.Base(audioFile),
		GeneratedAt:    time.Now(),
		ModelID:        r.cfg.ModelSize.ModelID(),
		Text:           strings.TrimSpace(out.Text),
	}

	name, err := writer.Write(r.cfg.OutputDir, res)
	if err != nil {
		result.Err = err
		return result
	}

	result.Artifact = name
	return result
}
