package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/spine/internal/api"
	"github.com/jackzampolin/spine/internal/bookmeta"
	"github.com/jackzampolin/spine/internal/config"
	"github.com/jackzampolin/spine/internal/detect"
	"github.com/jackzampolin/spine/internal/ingest"
	"github.com/jackzampolin/spine/internal/textstats"
)

var metadataFile string

var detectCmd = &cobra.Command{
	Use:   "detect <pages-dir>",
	Short: "Detect chapter boundaries in a directory of per-page text files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		pages, err := ingest.LoadPages(args[0])
		if err != nil {
			return err
		}

		var meta map[string]any
		if metadataFile != "" {
			data, err := os.ReadFile(metadataFile)
			if err != nil {
				return fmt.Errorf("failed to read metadata file: %w", err)
			}
			meta, err = bookmeta.Load(data)
			if err != nil {
				return err
			}
		}

		extractor := textstats.New(cfg.ToExtractorConfig())
		pipeline := detect.NewPipeline(extractor, cfg.Detect)
		boundaries := pipeline.DetectChapters(pages, meta)

		return api.Output(map[string]any{
			"pages":    len(pages),
			"chapters": boundaries,
		})
	},
}

func init() {
	detectCmd.Flags().StringVar(
		&metadataFile, "metadata", "", "book metadata JSON file (may carry an explicit chapters array)",
	)
}
