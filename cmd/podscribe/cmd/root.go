package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"podscribe/cmd/podscribe/cmd/export"
	"podscribe/cmd/podscribe/cmd/version"
	"podscribe/internal/app/batch"
	"podscribe/internal/app/logger"
	"podscribe/internal/app/model"
	"podscribe/internal/app/whisper"
	"podscribe/internal/config"
)

var (
	Verbose    bool
	modelSize  string
	inputDir   string
	outputDir  string
	noProgress bool
)

// rootCmd represents the base command when called without any subcommands.
// Running it starts a batch transcription over the default input folder or
// over the file/folder given as the single positional argument.
var rootCmd = &cobra.Command{
	Use:   "podscribe [path]",
	Short: "Batch transcribe local MP3 files to text using whisper",
	Long: `Batch transcribe local MP3 files to text using a local whisper model.
- Put MP3 files in the 'input' folder and run podscribe with no arguments
- Or pass a single MP3 file or a folder of MP3 files as the argument
- Transcripts are written to the 'output' folder, one .txt per input`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) > 0 {
			target = args[0]
		}
		return runBatch(target)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Exiting happens here, after
// every deferred cleanup inside the command has run.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, batch.ErrNoInputFiles) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.Flags().StringVarP(&modelSize, "model", "m", "",
		"whisper model size: tiny, base, small, medium or large")
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "",
		"input directory used when no path argument is given")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory the transcript artifacts are written to")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
}

func runBatch(target string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if modelSize != "" {
		size, err := whisper.ParseModelSize(modelSize)
		if err != nil {
			return err
		}
		cfg.ModelSize = size
	}
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	log := logger.MustNewLogger(Verbose)
	defer log.Sync()

	printBanner(cfg)

	loader := whisper.NewLocalLoader(cfg.WhisperBinary, cfg.ModelDir, log)
	runner := batch.NewRunner(cfg, loader, log, batch.ProgressConfig{
		Enabled: !noProgress && batch.ShouldShowProgress(false),
	})

	summary, err := runner.Run(target)
	if errors.Is(err, batch.ErrNoInputFiles) {
		printNoFilesHelp(cfg, target)
		return err
	}
	if err != nil {
		return err
	}

	printSummary(cfg, summary)
	return nil
}

func printBanner(cfg config.Config) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("  PODSCRIBE - local whisper transcription")
	fmt.Println("  Batch mode: processes all MP3 files automatically")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("\n> Input folder:  %s\n", cfg.InputDir)
	fmt.Printf("> Output folder: %s\n", cfg.OutputDir)
}

func printNoFilesHelp(cfg config.Config, target string) {
	source := target
	if source == "" {
		source = cfg.InputDir
	}
	fmt.Printf("\n[!] No MP3 files found in: %s\n", source)
	fmt.Println("\n" + strings.Repeat("-", 60))
	fmt.Println("HOW TO USE:")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("\n1. Put your MP3 files in the 'input' folder:\n   %s\n", cfg.InputDir)
	fmt.Println("\n2. Run: podscribe")
	fmt.Printf("\n3. Find transcriptions in the 'output' folder:\n   %s\n", cfg.OutputDir)
	fmt.Println("\nOR specify a file/folder directly:")
	fmt.Println("   podscribe episode.mp3")
	fmt.Println("   podscribe /path/to/podcasts")
}

func printSummary(cfg config.Config, summary model.RunSummary) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("  BATCH TRANSCRIPTION COMPLETE!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("\n[OK] Successfully transcribed %d of %d files\n", summary.Succeeded(), summary.Discovered)
	fmt.Printf("\nOutput folder: %s\n", cfg.OutputDir)
	fmt.Println("\nGenerated files:")
	for _, name := range summary.Artifacts() {
		fmt.Printf("  - %s\n", name)
	}
}
