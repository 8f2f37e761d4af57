package documents

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"nicaris/backoffice/internal/models"
)

// Access levels, least to most restricted.
const (
	AccessAll     = "all"
	AccessManager = "manager"
	AccessAdmin   = "admin"
)

// Store is the local document index backing the documents page.
type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			size_mb REAL NOT NULL DEFAULT 0,
			uploaded_by TEXT NOT NULL,
			uploaded_at TIMESTAMP NOT NULL,
			access_level TEXT NOT NULL DEFAULT 'all'
		);
	`)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_documents_category
		ON documents(category);
	`)
	return err
}

// Seed inserts the given documents, replacing rows with the same id. Used
// at startup to load the back-office document set.
func (s *Store) Seed(docs []models.Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO documents
			(id, name, type, category, size_mb, uploaded_by, uploaded_at, access_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range docs {
		if _, err := stmt.Exec(d.ID, d.Name, d.Type, d.Category, d.SizeMB,
			d.UploadedBy, d.UploadedAt.UTC(), d.AccessLevel); err != nil {
			return fmt.Errorf("failed to seed document %s: %w", d.ID, err)
		}
	}
	return tx.Commit()
}

// accessLevelsFor maps a session role to the access levels it may read.
func accessLevelsFor(role string) []string {
	switch role {
	case models.RoleAdmin:
		return []string{AccessAll, AccessManager, AccessAdmin}
	case models.RoleManager:
		return []string{AccessAll, AccessManager}
	default:
		return []string{AccessAll}
	}
}

// List returns documents visible to the role, optionally narrowed by a
// case-insensitive name search and a category. The "all" category sentinel
// matches everything.
func (s *Store) List(role, search, category string) ([]models.Document, error) {
	levels := accessLevelsFor(role)

	var conditions []string
	var args []interface{}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(levels)), ",")
	conditions = append(conditions, fmt.Sprintf("access_level IN (%s)", placeholders))
	for _, l := range levels {
		args = append(args, l)
	}

	if search = strings.TrimSpace(search); search != "" {
		conditions = append(conditions, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	if category != "" && category != "all" {
		conditions = append(conditions, "category = ?")
		args = append(args, category)
	}

	query := `
		SELECT id, name, type, category, size_mb, uploaded_by, uploaded_at, access_level
		FROM documents
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY uploaded_at DESC, id
	`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		var uploadedAt time.Time
		if err := rows.Scan(&d.ID, &d.Name, &d.Type, &d.Category, &d.SizeMB,
			&d.UploadedBy, &uploadedAt, &d.AccessLevel); err != nil {
			return nil, err
		}
		d.UploadedAt = uploadedAt
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Categories returns the distinct document categories, sorted.
func (s *Store) Categories() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT category FROM documents ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
