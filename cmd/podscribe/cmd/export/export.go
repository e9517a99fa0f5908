package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"podscribe/internal/app/export"
	"podscribe/internal/config"
)

var (
	outputDir string
	toFile    string
)

func init() {
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"output directory holding the transcript artifacts (defaults to the configured output folder)")
	Cmd.Flags().StringVarP(&toFile, "file", "f", "transcriptions.xlsx",
		"path of the spreadsheet to write")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transcript artifacts to a single xlsx spreadsheet",
	Long: `Export all transcript artifacts to a single xlsx spreadsheet

- Reads every .txt artifact in the output directory
- Parses the artifact header (source file, timestamp, model)
- Writes one spreadsheet row per transcript`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := outputDir
		if dir == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir = cfg.OutputDir
		}

		artifacts, err := export.ReadArtifacts(dir)
		if err != nil {
			return err
		}
		if len(artifacts) == 0 {
			return fmt.Errorf("no transcript artifacts found in %s", dir)
		}

		if err := export.ToExcel(artifacts, toFile); err != nil {
			return err
		}

		fmt.Printf("Exported %d transcript(s) to %s\n", len(artifacts), toFile)
		return nil
	},
}
