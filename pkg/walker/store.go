package walker

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// The corpus database is a read-optimized SQLite file produced once by the
// annotation pipeline: one row per syllable with a column per feature, plus
// a free-form metadata table.

const corpusSchema = `
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS syllables (
    syllable TEXT PRIMARY KEY,
    frequency INTEGER NOT NULL,
    starts_with_vowel INTEGER NOT NULL,
    starts_with_cluster INTEGER NOT NULL,
    starts_with_heavy_cluster INTEGER NOT NULL,
    contains_plosive INTEGER NOT NULL,
    contains_fricative INTEGER NOT NULL,
    contains_liquid INTEGER NOT NULL,
    contains_nasal INTEGER NOT NULL,
    short_vowel INTEGER NOT NULL,
    long_vowel INTEGER NOT NULL,
    ends_with_vowel INTEGER NOT NULL,
    ends_with_nasal INTEGER NOT NULL,
    ends_with_stop INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_frequency ON syllables(frequency DESC);
`

// SetupCorpusSchema initializes the corpus tables in the provided database.
// It is idempotent and safe to call on an already-initialized database.
func SetupCorpusSchema(db *sql.DB) error {
	if _, err := db.Exec(corpusSchema); err != nil {
		return fmt.Errorf("could not create corpus schema: %w", err)
	}
	return nil
}

// ImportCorpus bulk-inserts the given records into the syllables table
// within a single transaction, replacing rows for syllables that already
// exist.
func ImportCorpus(ctx context.Context, db *sql.DB, records []SyllableRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin corpus import transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	cols := append([]string{"syllable", "frequency"}, FeatureNames[:]...)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT OR REPLACE INTO syllables (%s) VALUES (%s)",
		strings.Join(cols, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("could not prepare corpus insert: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmt)

	args := make([]any, len(cols))
	for _, rec := range records {
		args[0] = rec.Text
		args[1] = rec.Frequency
		for bit := 0; bit < FeatureCount; bit++ {
			if rec.Features.Get(bit) {
				args[2+bit] = 1
			} else {
				args[2+bit] = 0
			}
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert syllable %q: %w", rec.Text, err)
		}
	}

	return tx.Commit()
}

// LoadCorpusDB reads every syllable row from the database and freezes the
// result into a Corpus, ordered by descending frequency then text so the
// corpus index assignment is stable across loads.
func LoadCorpusDB(ctx context.Context, db *sql.DB) (*Corpus, error) {
	cols := append([]string{"syllable", "frequency"}, FeatureNames[:]...)
	rows, err := db.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM syllables ORDER BY frequency DESC, syllable ASC",
		strings.Join(cols, ", "),
	))
	if err != nil {
		return nil, fmt.Errorf("could not query syllables: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var records []SyllableRecord
	featureFlags := make([]int, FeatureCount)
	scanTargets := make([]any, 2+FeatureCount)
	for rows.Next() {
		var rec SyllableRecord
		scanTargets[0] = &rec.Text
		scanTargets[1] = &rec.Frequency
		for bit := range featureFlags {
			scanTargets[2+bit] = &featureFlags[bit]
		}
		if err = rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("could not scan syllable row: %w", err)
		}
		for bit, flag := range featureFlags {
			rec.Features = rec.Features.Set(bit, flag != 0)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return NewCorpus(records)
}

// LoadCorpusJSON reads the annotated-JSON interchange format (an array of
// {syllable, frequency, features} objects) and freezes it into a Corpus.
func LoadCorpusJSON(r io.Reader) (*Corpus, error) {
	var records []SyllableRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode annotated syllables: %w", err)
	}
	return NewCorpus(records)
}
