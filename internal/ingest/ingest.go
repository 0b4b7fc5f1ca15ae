// Package ingest handles book ingestion from directories of per-page text.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/jackzampolin/spine/internal/home"
	"github.com/jackzampolin/spine/internal/types"
)

// Request contains the parameters for ingesting a book.
type Request struct {
	PagesDir string       // Directory of per-page text files (page_0001.txt style)
	PDFPath  string       // Optional source PDF for a page-count cross-check
	Title    string       // Book title (optional, derived from directory name if empty)
	Author   string       // Book author (optional)
	Logger   *slog.Logger // Optional logger for progress updates
}

// Result contains the result of a successful ingest operation.
type Result struct {
	BookID    string
	Title     string
	PageCount int
}

// pageFilePattern matches per-page text files and captures the page number.
var pageFilePattern = regexp.MustCompile(`^page[_-]?(\d{1,5})\.(txt|md)$`)

// Ingest reads page text files into a book record under the spine home
// directory and writes the book manifest. When a source PDF is supplied its
// page count must match the number of text files.
func Ingest(ctx context.Context, homeDir *home.Dir, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	pages, err := LoadPages(req.PagesDir)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page files found in %s", req.PagesDir)
	}

	if req.PDFPath != "" {
		count, err := api.PageCountFile(req.PDFPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read PDF page count: %w", err)
		}
		if count != len(pages) {
			return nil, fmt.Errorf("page count mismatch: PDF has %d pages, directory has %d text files", count, len(pages))
		}
	}

	title := req.Title
	if title == "" {
		title = deriveTitle(req.PagesDir)
	}

	bookID := uuid.New().String()
	bookDir := homeDir.BookDir(bookID)
	if err := os.MkdirAll(filepath.Join(bookDir, "pages"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create book directory: %w", err)
	}

	manifest := Manifest{
		BookID: bookID,
		Title:  title,
		Author: req.Author,
		Pages:  make([]ManifestPage, 0, len(pages)),
	}

	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := fmt.Sprintf("page_%04d.txt", p.PageNumber)
		if err := os.WriteFile(filepath.Join(bookDir, "pages", name), []byte(p.Text), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write page %d: %w", p.PageNumber, err)
		}
		manifest.Pages = append(manifest.Pages, ManifestPage{
			PageNumber: p.PageNumber,
			Checksum:   fmt.Sprintf("%016x", xxhash.Sum64String(p.Text)),
		})
	}

	if err := manifest.Write(homeDir.ManifestPath(bookID)); err != nil {
		return nil, err
	}

	log.Info("ingested book",
		"book_id", bookID,
		"title", title,
		"pages", len(pages))

	return &Result{BookID: bookID, Title: title, PageCount: len(pages)}, nil
}

// LoadPages reads every page text file in dir, sorted by page number.
func LoadPages(dir string) ([]types.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	var pages []types.Page
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := pageFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil || num <= 0 {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read page file %s: %w", entry.Name(), err)
		}
		pages = append(pages, types.Page{PageNumber: num, Text: string(data)})
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].PageNumber < pages[j].PageNumber
	})
	return pages, nil
}

// deriveTitle turns a directory name into a human-readable title.
func deriveTitle(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return strings.TrimSpace(base)
}
