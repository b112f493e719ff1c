// Package reportstore persists collection reports twice over: an
// indented JSON dump for humans under <output>/processed/ and an
// append-only sqlite archive the CLI can list and reopen.
package reportstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gridrates/services/collector"
)

const timestampLayout = "20060102_150405"

type Store struct {
	db        *sql.DB
	outputDir string
}

// NewStore wires a report archive. db may be nil, in which case only
// the JSON dumps are written. outputDir may be empty, in which case
// only the archive row is written.
func NewStore(db *sql.DB, outputDir string) Store {
	return Store{
		db:        db,
		outputDir: outputDir,
	}
}

func (s Store) SaveReport(ctx context.Context, report *collector.Report) error {
	timestamp := report.CollectionStart.Format(timestampLayout)

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if s.outputDir != "" {
		err := s.writeDump(timestamp, body)
		if err != nil {
			return err
		}
	}

	if s.db != nil {
		_, err = s.db.ExecContext(
			ctx,
			`INSERT INTO report (
				timestamp, collection_start, duration_seconds,
				total_sources, successful_collections, rates_collected, body
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			timestamp,
			report.CollectionStart.Unix(),
			report.DurationSeconds,
			report.Summary.TotalSources,
			report.Summary.SuccessfulCollections,
			report.Summary.RatesCollected,
			string(body),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s Store) writeDump(timestamp string, body []byte) error {
	dir := filepath.Join(s.outputDir, "processed")
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}
	name := filepath.Join(dir, fmt.Sprintf("targeted_rates_%s.json", timestamp))
	return os.WriteFile(name, body, 0644)
}

type ReportMeta struct {
	Timestamp             string
	CollectionStart       time.Time
	DurationSeconds       float64
	TotalSources          int
	SuccessfulCollections int
	RatesCollected        int
}

// ErrNoArchive is returned by the archive queries on a store built
// without a database.
var ErrNoArchive = errors.New("report archive database not configured")

// ListReports returns archive metadata for every stored run, newest
// first.
func (s Store) ListReports(ctx context.Context) ([]ReportMeta, error) {
	if s.db == nil {
		return nil, ErrNoArchive
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT timestamp, collection_start, duration_seconds,
			total_sources, successful_collections, rates_collected
		FROM report ORDER BY collection_start DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []ReportMeta
	for rows.Next() {
		var m ReportMeta
		var start int64
		err := rows.Scan(
			&m.Timestamp, &start, &m.DurationSeconds,
			&m.TotalSources, &m.SuccessfulCollections, &m.RatesCollected,
		)
		if err != nil {
			return nil, err
		}
		m.CollectionStart = time.Unix(start, 0)
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

func (s Store) GetReport(ctx context.Context, timestamp string) (*collector.Report, error) {
	if s.db == nil {
		return nil, ErrNoArchive
	}
	var body string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT body FROM report WHERE timestamp = ?`,
		timestamp,
	).Scan(&body)
	if err != nil {
		return nil, err
	}

	var report collector.Report
	err = json.Unmarshal([]byte(body), &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
