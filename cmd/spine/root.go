package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/spine/internal/api"
	"github.com/jackzampolin/spine/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "spine",
	Short: "Deterministic chapter detection and statistical content extraction",
	Long: `Spine partitions per-page document text into validated chapter
boundaries and extracts statistical metadata (keywords, concepts, summaries).

Detection tries candidate sources in strict priority order:
  - explicit chapter metadata (trusted completely)
  - table-of-contents parsing with page-offset resolution
  - chapter marker patterns in page text
  - topic-shift segmentation as a last resort

Everything is deterministic: the same pages and configuration always
produce the same output.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.spine/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "spine home directory (default: ~/.spine)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(ingestCmd)
}
