package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"addressbook/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores the contact list in a SQLite database. Save
// replaces every row inside one transaction.
type SQLiteRepository struct {
	db *sql.DB
}

var _ ContactStore = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	version, err := RunMigrations(dbPath)
	if err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Debug("SQLite contact store ready", "db_path", dbPath, "schema_version", version)
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Contact, error) {
	months, err := r.loadSets(ctx, `SELECT contact_id, month FROM contact_months_paid`)
	if err != nil {
		return nil, fmt.Errorf("load months paid: %w", err)
	}
	tags, err := r.loadSets(ctx, `SELECT contact_id, tag FROM contact_tags`)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, phone, email, address, fees_cents, class_id FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var out []core.Contact
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Phone, &rec.Email, &rec.Address, &rec.FeesCents, &rec.ClassID); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		rec.MonthsPaid = months[rec.ID]
		rec.Tags = tags[rec.ID]
		c, err := rec.Contact()
		if err != nil {
			return nil, fmt.Errorf("decode stored contact: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return out, nil
}

// loadSets reads a (contact_id, value) table into a map keyed by contact id.
func (r *SQLiteRepository) loadSets(ctx context.Context, query string) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, v string
		if err := rows.Scan(&id, &v); err != nil {
			return nil, err
		}
		out[id] = append(out[id], v)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Save(ctx context.Context, contacts []core.Contact) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"contact_tags", "contact_months_paid", "contacts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	insContact, err := tx.PrepareContext(ctx,
		`INSERT INTO contacts (id, position, name, phone, email, address, fees_cents, class_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare contact insert: %w", err)
	}
	defer insContact.Close()
	insMonth, err := tx.PrepareContext(ctx, `INSERT INTO contact_months_paid (contact_id, month) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare month insert: %w", err)
	}
	defer insMonth.Close()
	insTag, err := tx.PrepareContext(ctx, `INSERT INTO contact_tags (contact_id, tag) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare tag insert: %w", err)
	}
	defer insTag.Close()

	for pos, c := range contacts {
		if c.ID == uuid.Nil {
			return fmt.Errorf("save contact %q: %w", c.Name, core.ErrMissingIdentity)
		}
		id := c.ID.String()
		if _, err := insContact.ExecContext(ctx, id, pos, string(c.Name), string(c.Phone), string(c.Email),
			string(c.Address), c.Fees.Cents, string(c.ClassID)); err != nil {
			return fmt.Errorf("insert contact %s: %w", id, err)
		}
		for _, m := range c.MonthsPaid.Sorted() {
			if _, err := insMonth.ExecContext(ctx, id, string(m)); err != nil {
				return fmt.Errorf("insert month %s for %s: %w", m, id, err)
			}
		}
		for _, t := range c.Tags.Sorted() {
			if _, err := insTag.ExecContext(ctx, id, string(t)); err != nil {
				return fmt.Errorf("insert tag %s for %s: %w", t, id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit contacts: %w", err)
	}
	return nil
}

// CountPaid returns how many stored contacts have paid for month.
func (r *SQLiteRepository) CountPaid(ctx context.Context, month core.MonthPaid) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_months_paid WHERE month = ?`, string(month.Normalize())).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count paid for %s: %w", month, err)
	}
	return n, nil
}
