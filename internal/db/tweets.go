package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tweetscope/internal/dataset"
)

// Import describes one stored dataset
type Import struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"created_at"` // Unix millis
	Sources   string `json:"sources"`
	RowCount  int    `json:"row_count"`
}

// ReplaceDataset stores the table in place of any previous dataset, together
// with the set of columns the source provided
func (d *DB) ReplaceDataset(ctx context.Context, table *dataset.Table, sources []string) (*Import, error) {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range []string{`DELETE FROM tweets`, `DELETE FROM dataset_columns`, `DELETE FROM imports`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("clearing previous dataset: %w", err)
		}
	}

	for i, c := range table.Columns() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dataset_columns (name, position) VALUES (?, ?)`, string(c), i); err != nil {
			return nil, fmt.Errorf("insert column %s: %w", c, err)
		}
	}

	cols := dataset.AllColumns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quote(c)
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO tweets (row_id, %s) VALUES (?%s)`,
		strings.Join(names, ", "), strings.Repeat(", ?", len(cols)),
	))
	if err != nil {
		return nil, fmt.Errorf("prepare tweet insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(cols)+1)
	for i, r := range table.Records() {
		args[0] = i
		for j, c := range cols {
			args[j+1] = cellValue(r, c)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return nil, fmt.Errorf("insert tweet %d: %w", i, err)
		}
	}

	imp := &Import{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UnixMilli(),
		Sources:   strings.Join(sources, ","),
		RowCount:  table.Len(),
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (id, created_at, sources, row_count) VALUES (?, ?, ?, ?)`,
		imp.ID, imp.CreatedAt, imp.Sources, imp.RowCount); err != nil {
		return nil, fmt.Errorf("insert import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import tx: %w", err)
	}
	return imp, nil
}

func cellValue(r dataset.Record, c dataset.Column) any {
	if c.IsNumeric() {
		if v := r.Float(c); v != nil {
			return *v
		}
		return nil
	}
	if v := r.String(c); v != nil {
		return *v
	}
	return nil
}

// LoadTable reads the stored dataset back, restricted to the columns its
// source provided
func (d *DB) LoadTable(ctx context.Context) (*dataset.Table, error) {
	cols, err := d.columns(ctx)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return dataset.NewTable(nil, nil), nil
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quote(c)
	}
	rows, err := d.conn.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM tweets ORDER BY row_id`, strings.Join(names, ", ")))
	if err != nil {
		return nil, fmt.Errorf("query tweets: %w", err)
	}
	defer rows.Close()

	var records []dataset.Record
	dest := make([]any, len(cols))
	for rows.Next() {
		for i, c := range cols {
			if c.IsNumeric() {
				dest[i] = new(sql.NullFloat64)
			} else {
				dest[i] = new(sql.NullString)
			}
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan tweet: %w", err)
		}
		var r dataset.Record
		for i, c := range cols {
			switch v := dest[i].(type) {
			case *sql.NullFloat64:
				if v.Valid {
					if r.Num == nil {
						r.Num = make(map[dataset.Column]float64)
					}
					r.Num[c] = v.Float64
				}
			case *sql.NullString:
				if v.Valid {
					if r.Text == nil {
						r.Text = make(map[dataset.Column]string)
					}
					r.Text[c] = v.String
				}
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tweets: %w", err)
	}
	return dataset.NewTable(cols, records), nil
}

func (d *DB) columns(ctx context.Context) ([]dataset.Column, error) {
	rows, err := d.conn.QueryContext(ctx, `SELECT name FROM dataset_columns ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	var cols []dataset.Column
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		if c := dataset.Column(name); c.Known() {
			cols = append(cols, c)
		}
	}
	return cols, rows.Err()
}

// LatestImport returns the stored dataset's import record, or nil when
// nothing has been imported
func (d *DB) LatestImport(ctx context.Context) (*Import, error) {
	var imp Import
	err := d.conn.QueryRowContext(ctx,
		`SELECT id, created_at, sources, row_count FROM imports ORDER BY created_at DESC LIMIT 1`,
	).Scan(&imp.ID, &imp.CreatedAt, &imp.Sources, &imp.RowCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query import: %w", err)
	}
	return &imp, nil
}
