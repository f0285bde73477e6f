// Package symdb implements hdoc.Oracle over a SQLite symbol index
// produced by the external class indexer.
package symdb

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"pkt.systems/hdoc"
)

// DB answers symbol lookups from a SQLite database. It is safe for
// concurrent readers; writes happen only through Insert helpers used
// by the indexer and tests.
type DB struct {
	conn   *sql.DB
	logger *slog.Logger
}

// Open opens or creates a symbol database at path. ":memory:" is
// accepted for tests. A nil logger discards debug output.
func Open(path string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open symbol database: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}
	db := &DB{conn: conn, logger: logger}
	if err := db.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("initialize symbol schema: %w", err)
	}
	return db, nil
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS classes (
			name       TEXT PRIMARY KEY,
			superclass TEXT NOT NULL DEFAULT '',
			file       TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS method_args (
			class  TEXT NOT NULL,
			method TEXT NOT NULL,
			pos    INTEGER NOT NULL,
			name   TEXT NOT NULL,
			dflt   TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (class, method, pos)
		);
		CREATE TABLE IF NOT EXISTS documents (
			id    TEXT PRIMARY KEY,
			title TEXT NOT NULL
		);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Superclasses walks the superclass chain of class, nearest first.
func (db *DB) Superclasses(class string) ([]string, error) {
	var chain []string
	seen := map[string]bool{class: true}
	current := class
	for current != "" {
		var super string
		err := db.conn.QueryRow(
			`SELECT superclass FROM classes WHERE name = ?`, current,
		).Scan(&super)
		if errors.Is(err, sql.ErrNoRows) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("superclass of %q: %w", current, err)
		}
		if super == "" || seen[super] {
			break
		}
		chain = append(chain, super)
		seen[super] = true
		current = super
	}
	db.logger.Debug("superclass lookup", "class", class, "depth", len(chain))
	return chain, nil
}

// MethodArgs returns the ordered argument list of class's method, or
// nil when the method is unknown.
func (db *DB) MethodArgs(class, method string) ([]hdoc.MethodArg, error) {
	rows, err := db.conn.Query(
		`SELECT name, dflt FROM method_args
		 WHERE class = ? AND method = ? ORDER BY pos`, class, method,
	)
	if err != nil {
		return nil, fmt.Errorf("method args %s.%s: %w", class, method, err)
	}
	defer rows.Close()
	var args []hdoc.MethodArg
	for rows.Next() {
		var a hdoc.MethodArg
		if err := rows.Scan(&a.Name, &a.Default); err != nil {
			return nil, fmt.Errorf("method args %s.%s: %w", class, method, err)
		}
		args = append(args, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("method args %s.%s: %w", class, method, err)
	}
	return args, nil
}

// ImplementingFile returns the source file implementing class, or ""
// when the class is unknown.
func (db *DB) ImplementingFile(class string) (string, error) {
	var file string
	err := db.conn.QueryRow(
		`SELECT file FROM classes WHERE name = ?`, class,
	).Scan(&file)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("implementing file of %q: %w", class, err)
	}
	return file, nil
}

// DocumentTitle returns the human title of a help document, or ""
// when none is recorded.
func (db *DB) DocumentTitle(doc string) (string, error) {
	var title string
	err := db.conn.QueryRow(
		`SELECT title FROM documents WHERE id = ?`, doc,
	).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("title of document %q: %w", doc, err)
	}
	return title, nil
}

// InsertClass records a class with its superclass and implementing
// file. Used by the indexer and tests.
func (db *DB) InsertClass(name, superclass, file string) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO classes (name, superclass, file) VALUES (?, ?, ?)`,
		name, superclass, file,
	)
	if err != nil {
		return fmt.Errorf("insert class %q: %w", name, err)
	}
	return nil
}

// InsertMethod records the ordered argument list of a method.
func (db *DB) InsertMethod(class, method string, args []hdoc.MethodArg) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("insert method %s.%s: %w", class, method, err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(
		`DELETE FROM method_args WHERE class = ? AND method = ?`, class, method,
	); err != nil {
		return fmt.Errorf("insert method %s.%s: %w", class, method, err)
	}
	for i, a := range args {
		if _, err := tx.Exec(
			`INSERT INTO method_args (class, method, pos, name, dflt) VALUES (?, ?, ?, ?, ?)`,
			class, method, i, a.Name, a.Default,
		); err != nil {
			return fmt.Errorf("insert method %s.%s: %w", class, method, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert method %s.%s: %w", class, method, err)
	}
	return nil
}

// InsertDocument records the human title of a help document.
func (db *DB) InsertDocument(id, title string) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO documents (id, title) VALUES (?, ?)`,
		id, title,
	)
	if err != nil {
		return fmt.Errorf("insert document %q: %w", id, err)
	}
	return nil
}

var _ hdoc.Oracle = (*DB)(nil)
