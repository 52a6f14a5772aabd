package progress

import (
	"os"
	"path/filepath"
	"testing"

	"anketa/internal/config"
)

func testConfig(t *testing.T) (config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{
		Version: 1,
		Variants: []config.Variant{
			{ID: "spanish", QuestionsFile: "600Q_español.txt"},
			{ID: "german", QuestionsFile: "600Q_aleman.txt"},
		},
		BaseDir: dir,
	}
	config.Normalize(&cfg)
	return cfg, dir
}

func writeFile(t *testing.T, path, payload string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TestForVariantFreshStart verifies a variant with questions and no log
// reports zero progress.
func TestForVariantFreshStart(t *testing.T) {
	cfg, dir := testConfig(t)
	writeFile(t, filepath.Join(dir, "600Q_español.txt"), "1. A?\n2. B?\n3. C?\n")

	s := ForVariant(cfg, cfg.Variants[0])
	if !s.Available() {
		t.Fatalf("expected available variant, got %v", s.QuestionsErr)
	}
	if s.Total != 3 || s.Records != 0 || s.Distinct != 0 || s.Resume != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Complete() {
		t.Fatalf("fresh variant must not be complete")
	}
}

// TestForVariantPartialProgress verifies counts, resume offset, and the
// duplicate-tolerant distinct count.
func TestForVariantPartialProgress(t *testing.T) {
	cfg, dir := testConfig(t)
	writeFile(t, filepath.Join(dir, "600Q_español.txt"), "1. A?\n2. B?\n3. C?\n")
	writeFile(t, filepath.Join(dir, "600A_español.txt"), "0;1. A?;first\n0;1. A?;revised\n1;2. B?;second\n")

	s := ForVariant(cfg, cfg.Variants[0])
	if s.Records != 3 {
		t.Fatalf("expected 3 records, got %d", s.Records)
	}
	if s.Distinct != 2 {
		t.Fatalf("expected 2 distinct answers, got %d", s.Distinct)
	}
	if s.Resume != 1 {
		t.Fatalf("expected resume offset 1, got %d", s.Resume)
	}
	if s.Complete() {
		t.Fatalf("partial progress must not be complete")
	}
}

// TestForVariantComplete verifies completion requires every index, not a
// high resume offset.
func TestForVariantComplete(t *testing.T) {
	cfg, dir := testConfig(t)
	writeFile(t, filepath.Join(dir, "600Q_español.txt"), "1. A?\n2. B?\n")
	writeFile(t, filepath.Join(dir, "600A_español.txt"), "0;1. A?;a\n1;2. B?;b\n")

	s := ForVariant(cfg, cfg.Variants[0])
	if !s.Complete() {
		t.Fatalf("expected complete, got %+v", s)
	}
	if s.Resume != 1 {
		t.Fatalf("expected resume to stay on the last question, got %d", s.Resume)
	}

	gappy := "1;2. B?;only the second\n"
	writeFile(t, filepath.Join(dir, "600A_español.txt"), gappy)
	s = ForVariant(cfg, cfg.Variants[0])
	if s.Complete() {
		t.Fatalf("gap at index 0 must not count as complete: %+v", s)
	}
}

// TestForVariantMissingQuestions verifies a variant without its question
// file is unavailable but still reports its log.
func TestForVariantMissingQuestions(t *testing.T) {
	cfg, dir := testConfig(t)
	writeFile(t, filepath.Join(dir, "600A_aleman.txt"), "0;Q;A\n")

	s := ForVariant(cfg, cfg.Variants[1])
	if s.Available() {
		t.Fatalf("expected unavailable variant")
	}
	if s.Records != 1 || s.Resume != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Distinct != 0 {
		t.Fatalf("out-of-range answers must not count distinct, got %d", s.Distinct)
	}
}

// TestForVariantUnreadableLog verifies log errors surface without killing
// the summary.
func TestForVariantUnreadableLog(t *testing.T) {
	cfg, dir := testConfig(t)
	writeFile(t, filepath.Join(dir, "600Q_español.txt"), "1. A?\n")
	if err := os.Mkdir(filepath.Join(dir, "600A_español.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	s := ForVariant(cfg, cfg.Variants[0])
	if s.LogErr == nil {
		t.Fatalf("expected log error")
	}
	if !s.Available() || s.Total != 1 {
		t.Fatalf("questions should still be counted: %+v", s)
	}
}

// TestCollectDefaultsToAllVariants verifies the nil selection covers the
// whole config in order.
func TestCollectDefaultsToAllVariants(t *testing.T) {
	cfg, dir := testConfig(t)
	writeFile(t, filepath.Join(dir, "600Q_español.txt"), "1. A?\n")

	summaries := Collect(cfg, nil)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Variant.ID != "spanish" || summaries[1].Variant.ID != "german" {
		t.Fatalf("unexpected order: %+v", summaries)
	}
}
