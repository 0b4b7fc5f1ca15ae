package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/spine/internal/api"
	"github.com/jackzampolin/spine/internal/home"
	"github.com/jackzampolin/spine/internal/ingest"
)

var (
	ingestPDF    string
	ingestTitle  string
	ingestAuthor string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <pages-dir>",
	Short: "Ingest a directory of per-page text files into the spine home",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := dir.EnsureExists(); err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		result, err := ingest.Ingest(cmd.Context(), dir, ingest.Request{
			PagesDir: args[0],
			PDFPath:  ingestPDF,
			Title:    ingestTitle,
			Author:   ingestAuthor,
			Logger:   logger,
		})
		if err != nil {
			return err
		}
		return api.Output(result)
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestPDF, "pdf", "", "source PDF for a page-count cross-check")
	ingestCmd.Flags().StringVar(&ingestTitle, "title", "", "book title (default: derived from directory name)")
	ingestCmd.Flags().StringVar(&ingestAuthor, "author", "", "book author")
}
