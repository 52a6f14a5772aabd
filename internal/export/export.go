package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"anketa/internal/answerlog"
	"anketa/internal/config"

	_ "github.com/duckdb/duckdb-go/v2"
)

// VariantResult reports how many records one variant contributed.
type VariantResult struct {
	VariantID string
	Records   int
}

// Result describes one completed ingestion.
type Result struct {
	ImportID string
	Variants []VariantResult
	Total    int
}

// Open opens the DuckDB database at path, creating it when missing. An
// empty path opens an in-memory database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	return db, nil
}

// Ingest copies every valid record of the given variants' answer logs into
// the database under a fresh import id. Missing logs contribute zero
// records; malformed lines are skipped exactly as during resume
// computation. An unreadable log aborts the whole ingestion.
func Ingest(ctx context.Context, db *sql.DB, cfg config.Config, variants []config.Variant) (Result, error) {
	if db == nil {
		return Result{}, errors.New("export: db is nil")
	}
	if len(variants) == 0 {
		variants = cfg.Variants
	}

	result := Result{ImportID: uuid.NewString()}
	type variantRecords struct {
		id      string
		records []answerlog.Record
	}
	loaded := make([]variantRecords, 0, len(variants))
	for _, variant := range variants {
		records, err := answerlog.New(cfg.AnswersPath(variant)).Records()
		if err != nil {
			return Result{}, fmt.Errorf("variant %s: %w", variant.ID, err)
		}
		loaded = append(loaded, variantRecords{id: variant.ID, records: records})
		result.Variants = append(result.Variants, VariantResult{VariantID: variant.ID, Records: len(records)})
		result.Total += len(records)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin ingest: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO imports (import_id, source, records) VALUES (?, ?, ?)`,
		result.ImportID,
		cfg.BaseDir,
		result.Total,
	); err != nil {
		return Result{}, fmt.Errorf("insert import: %w", err)
	}

	for _, entry := range loaded {
		for seq, record := range entry.records {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO answers (import_id, variant_id, seq, question_index, question, answer, skipped)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				result.ImportID,
				entry.id,
				seq,
				record.Index,
				record.Question,
				record.Answer,
				record.IsSkipped(),
			); err != nil {
				return Result{}, fmt.Errorf("insert answer %s/%d: %w", entry.id, seq, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit ingest: %w", err)
	}
	return result, nil
}
