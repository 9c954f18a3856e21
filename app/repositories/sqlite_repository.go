package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"blogshell/app/models"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS blogs (
	name     TEXT PRIMARY KEY,
	document TEXT NOT NULL
);
`

// SQLiteBlogRepository implements BlogRepository on a single SQLite table,
// one JSON document per blog.
type SQLiteBlogRepository struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database at path
func OpenSQLite(path string) (*SQLiteBlogRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// the engine is single writer; one connection keeps :memory: databases coherent
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteBlogRepository{db: db}, nil
}

// Get retrieves a blog by name
func (r *SQLiteBlogRepository) Get(name string) (*models.Blog, error) {
	var doc string
	err := r.db.QueryRow(`SELECT document FROM blogs WHERE name = ?`, name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeBlog(name, []byte(doc))
}

// Put upserts the blog document
func (r *SQLiteBlogRepository) Put(blog *models.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}
	data, err := marshalEntity(blog)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO blogs (name, document) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET document = excluded.document`,
		blog.Name, string(data),
	)
	return err
}

// List returns every stored blog name
func (r *SQLiteBlogRepository) List() ([]string, error) {
	rows, err := r.db.Query(`SELECT name FROM blogs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Backup writes one JSON document per blog
func (r *SQLiteBlogRepository) Backup(w io.Writer) error {
	return exportBlogs(r, w)
}

// Restore reloads documents written by Backup
func (r *SQLiteBlogRepository) Restore(rd io.Reader) error {
	return importBlogs(r, rd)
}

func (r *SQLiteBlogRepository) Close() error {
	return r.db.Close()
}
