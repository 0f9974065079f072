package store

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"buildsurge/internal/domain"
)

// SQLiteStore holds the collection in a single table and preserves the
// Store contract exactly: Load returns insertion order, Save replaces
// everything in one transaction. It exists so the flat-file store can
// be swapped out without touching the service.
type SQLiteStore struct {
	db *sqlx.DB
}

func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS inquiries(
  id           INTEGER NOT NULL,
  submitted_at TEXT NOT NULL,
  name         TEXT NOT NULL,
  company      TEXT NOT NULL DEFAULT '',
  phone        TEXT NOT NULL,
  email        TEXT NOT NULL,
  pipe_size    TEXT NOT NULL DEFAULT '',
  quantity     TEXT NOT NULL DEFAULT '',
  message      TEXT NOT NULL DEFAULT '',
  status       TEXT NOT NULL DEFAULT 'new'
);
CREATE INDEX IF NOT EXISTS idx_inquiries_id ON inquiries(id);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() ([]domain.Inquiry, error) {
	list := []domain.Inquiry{}
	err := s.db.Select(&list, `
		SELECT id, submitted_at, name, company, phone, email, pipe_size, quantity, message, status
		FROM inquiries ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *SQLiteStore) Save(list []domain.Inquiry) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM inquiries`); err != nil {
		return err
	}
	for _, q := range list {
		if _, err := tx.NamedExec(`
			INSERT INTO inquiries(id, submitted_at, name, company, phone, email, pipe_size, quantity, message, status)
			VALUES(:id, :submitted_at, :name, :company, :phone, :email, :pipe_size, :quantity, :message, :status)`, q); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
