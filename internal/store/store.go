// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists parsed enzymes in a SQLite database and reads them
// back for lookup and export. List-valued fields (id groups, identifiers,
// comment tags) are stored as JSON text columns.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/brenda-engine/pkg/types"
)

// Store manages the enzyme SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the enzyme database named by cfg, creating the
// schema if it does not exist. An empty path defaults to brenda.db in the
// working directory.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "brenda.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS enzymes (
			ec_number TEXT PRIMARY KEY,
			comment TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS proteins (
			ec_number TEXT NOT NULL REFERENCES enzymes(ec_number),
			protein_id INTEGER NOT NULL,
			organism TEXT,
			information TEXT,
			comment TEXT,
			identifiers TEXT,
			refs TEXT,
			PRIMARY KEY (ec_number, protein_id)
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			ec_number TEXT NOT NULL REFERENCES enzymes(ec_number),
			section TEXT NOT NULL,
			position INTEGER NOT NULL,
			msg TEXT,
			information TEXT,
			comment TEXT,
			protein_groups TEXT,
			ref_groups TEXT,
			PRIMARY KEY (ec_number, section, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_section ON entries(section)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from an ingestion run.
type IngestSummary struct {
	Enzymes  int
	Proteins int
	Entries  int
	Failed   int
}

// Ingest writes the enzymes into the database, one transaction per enzyme,
// replacing any previous rows for the same EC number. Per-enzyme status goes
// to w.
func (s *Store) Ingest(ctx context.Context, enzymes []*types.Enzyme, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary
	for _, enz := range enzymes {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		if err := s.ingestEnzyme(ctx, enz); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", enz.ECNumber, err)
			summary.Failed++
			continue
		}

		entries := 0
		for _, recs := range enz.Entries {
			entries += len(recs)
		}
		fmt.Fprintf(w, "stored  %s (%d proteins, %d entries)\n",
			enz.ECNumber, len(enz.Proteins), entries)
		summary.Enzymes++
		summary.Proteins += len(enz.Proteins)
		summary.Entries += entries
	}

	fmt.Fprintf(w, "\nstored: %d enzymes, %d proteins, %d entries, %d failed\n",
		summary.Enzymes, summary.Proteins, summary.Entries, summary.Failed)
	return summary, nil
}

func (s *Store) ingestEnzyme(ctx context.Context, enz *types.Enzyme) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM entries WHERE ec_number = ?`,
		`DELETE FROM proteins WHERE ec_number = ?`,
		`DELETE FROM enzymes WHERE ec_number = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, enz.ECNumber); err != nil {
			return fmt.Errorf("deleting old rows: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO enzymes (ec_number, comment) VALUES (?, ?)`,
		enz.ECNumber, enz.Comment,
	); err != nil {
		return fmt.Errorf("inserting enzyme: %w", err)
	}

	pstmt, err := tx.PrepareContext(ctx,
		`INSERT INTO proteins (ec_number, protein_id, organism, information, comment, identifiers, refs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing protein insert: %w", err)
	}
	defer pstmt.Close()

	ids := make([]int, 0, len(enz.Proteins))
	for id := range enz.Proteins {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		p := enz.Proteins[id]
		if _, err := pstmt.ExecContext(ctx,
			enz.ECNumber, id, p.Organism, p.Information,
			asJSON(p.Comment), asJSON(p.Identifiers), asJSON(p.References),
		); err != nil {
			return fmt.Errorf("inserting protein %d: %w", id, err)
		}
	}

	estmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (ec_number, section, position, msg, information, comment, protein_groups, ref_groups)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing entry insert: %w", err)
	}
	defer estmt.Close()

	sections := make([]string, 0, len(enz.Entries))
	for name := range enz.Entries {
		sections = append(sections, name)
	}
	sort.Strings(sections)
	for _, section := range sections {
		for pos, e := range enz.Entries[section] {
			if _, err := estmt.ExecContext(ctx,
				enz.ECNumber, section, pos, e.Msg, e.Information,
				asJSON(e.Comment), asJSON(e.Proteins), asJSON(e.References),
			); err != nil {
				return fmt.Errorf("inserting %s entry %d: %w", section, pos, err)
			}
		}
	}

	return tx.Commit()
}

// Lookup returns the enzymes whose EC number equals ec or sits under it as a
// dotted prefix ("1.1.1" finds every 1.1.1.x).
func (s *Store) Lookup(ctx context.Context, ec string) ([]*types.Enzyme, error) {
	return s.queryEnzymes(ctx,
		`SELECT ec_number, comment FROM enzymes
		 WHERE ec_number = ? OR ec_number LIKE ? ORDER BY ec_number`,
		ec, ec+".%")
}

// Export returns every enzyme in the database ordered by EC number.
func (s *Store) Export(ctx context.Context) ([]*types.Enzyme, error) {
	return s.queryEnzymes(ctx,
		`SELECT ec_number, comment FROM enzymes ORDER BY ec_number`)
}

func (s *Store) queryEnzymes(ctx context.Context, query string, args ...any) ([]*types.Enzyme, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying enzymes: %w", err)
	}
	defer rows.Close()

	var enzymes []*types.Enzyme
	for rows.Next() {
		var ec, comment string
		if err := rows.Scan(&ec, &comment); err != nil {
			return nil, fmt.Errorf("scanning enzyme: %w", err)
		}
		enzymes = append(enzymes, types.NewEnzyme(ec, comment))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading enzymes: %w", err)
	}

	for _, enz := range enzymes {
		if err := s.loadProteins(ctx, enz); err != nil {
			return nil, err
		}
		if err := s.loadEntries(ctx, enz); err != nil {
			return nil, err
		}
	}
	return enzymes, nil
}

func (s *Store) loadProteins(ctx context.Context, enz *types.Enzyme) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT protein_id, organism, information, comment, identifiers, refs
		 FROM proteins WHERE ec_number = ? ORDER BY protein_id`, enz.ECNumber)
	if err != nil {
		return fmt.Errorf("querying proteins: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                         int
			p                          types.Protein
			comment, identifiers, refs string
		)
		if err := rows.Scan(&id, &p.Organism, &p.Information, &comment, &identifiers, &refs); err != nil {
			return fmt.Errorf("scanning protein: %w", err)
		}
		if err := fromJSON(comment, &p.Comment); err != nil {
			return err
		}
		if err := fromJSON(identifiers, &p.Identifiers); err != nil {
			return err
		}
		if err := fromJSON(refs, &p.References); err != nil {
			return err
		}
		enz.Proteins[id] = p
	}
	return rows.Err()
}

func (s *Store) loadEntries(ctx context.Context, enz *types.Enzyme) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT section, msg, information, comment, protein_groups, ref_groups
		 FROM entries WHERE ec_number = ? ORDER BY section, position`, enz.ECNumber)
	if err != nil {
		return fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			section                       string
			e                             types.Entry
			comment, proteins, references string
		)
		if err := rows.Scan(&section, &e.Msg, &e.Information, &comment, &proteins, &references); err != nil {
			return fmt.Errorf("scanning entry: %w", err)
		}
		if err := fromJSON(comment, &e.Comment); err != nil {
			return err
		}
		if err := fromJSON(proteins, &e.Proteins); err != nil {
			return err
		}
		if err := fromJSON(references, &e.References); err != nil {
			return err
		}
		enz.Entries[section] = append(enz.Entries[section], e)
	}
	return rows.Err()
}

func asJSON(v any) string {
	data, _ := json.Marshal(v)
	return string(data)
}

func fromJSON(data string, v any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decoding stored JSON: %w", err)
	}
	return nil
}
