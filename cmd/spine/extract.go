package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/spine/internal/api"
	"github.com/jackzampolin/spine/internal/config"
	"github.com/jackzampolin/spine/internal/textstats"
)

var (
	extractTopN  int
	extractRatio float64
)

var extractCmd = &cobra.Command{
	Use:   "extract <text-file>",
	Short: "Extract keywords, concepts, and a summary from a text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read text file: %w", err)
		}

		extractor := textstats.New(cm.Get().ToExtractorConfig())
		result, err := extractor.Extract(string(data), extractTopN, extractRatio)
		if err != nil {
			return err
		}
		return api.Output(result)
	},
}

func init() {
	extractCmd.Flags().IntVar(&extractTopN, "top", 10, "number of keywords and concepts to return")
	extractCmd.Flags().Float64Var(&extractRatio, "ratio", 0.2, "summary length as a fraction of the input sentences")
}
