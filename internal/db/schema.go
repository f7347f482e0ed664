package db

import (
	"context"
	"fmt"
	"strings"

	"tweetscope/internal/dataset"
)

// tweetsDDL has one nullable column per known dataset column, text columns
// first. Column names come from dataset constants, never from input.
func tweetsDDL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS tweets (\n\t\t\trow_id INTEGER PRIMARY KEY")
	for _, c := range dataset.AllColumns() {
		kind := "TEXT"
		if c.IsNumeric() {
			kind = "REAL"
		}
		fmt.Fprintf(&b, ",\n\t\t\t%s %s", quote(c), kind)
	}
	b.WriteString("\n\t\t)")
	return b.String()
}

// quote makes a column name safe to use as an identifier; some dataset
// columns ("following") are SQLite keywords
func quote(c dataset.Column) string {
	return `"` + string(c) + `"`
}

func (d *DB) migrate(ctx context.Context) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS imports (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			sources TEXT NOT NULL,
			row_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS dataset_columns (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		)`,
		tweetsDDL(),
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
