package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Detect.MinKeywordsForValidity != 4 {
		t.Fatalf("MinKeywordsForValidity = %d", cfg.Detect.MinKeywordsForValidity)
	}
	if cfg.Detect.TOCNumberDensityThreshold != 8 {
		t.Fatalf("TOCNumberDensityThreshold = %d", cfg.Detect.TOCNumberDensityThreshold)
	}
	if cfg.Detect.TopicShiftSimilarityThreshold != 0.3 {
		t.Fatalf("TopicShiftSimilarityThreshold = %v", cfg.Detect.TopicShiftSimilarityThreshold)
	}
	if cfg.Extract.KeywordMaxPhraseLength != 3 {
		t.Fatalf("KeywordMaxPhraseLength = %d", cfg.Extract.KeywordMaxPhraseLength)
	}
	if cfg.Extract.Language != "english" {
		t.Fatalf("Language = %q", cfg.Extract.Language)
	}
}

func TestToExtractorConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extract.Stopwords = []string{"foo", "bar"}
	cfg.Extract.DedupSimilarityThreshold = 0.8

	ec := cfg.ToExtractorConfig()
	if ec.MaxPhraseLength != cfg.Extract.KeywordMaxPhraseLength {
		t.Fatalf("MaxPhraseLength = %d", ec.MaxPhraseLength)
	}
	if ec.DedupSimilarityThreshold != 0.8 {
		t.Fatalf("DedupSimilarityThreshold = %v", ec.DedupSimilarityThreshold)
	}
	if ec.Language != "english" {
		t.Fatalf("Language = %q", ec.Language)
	}
	if len(ec.Stopwords) != 2 || ec.Stopwords[0] != "foo" {
		t.Fatalf("Stopwords = %v", ec.Stopwords)
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Spine configuration") {
		t.Fatalf("missing header comment:\n%s", data)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written config does not parse: %v", err)
	}
	if cfg.Detect.MinChapterLength != DefaultConfig().Detect.MinChapterLength {
		t.Fatalf("round-tripped MinChapterLength = %d", cfg.Detect.MinChapterLength)
	}
}
