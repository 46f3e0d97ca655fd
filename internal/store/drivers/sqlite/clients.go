package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/6Ash6/TPIS-CRM-model/internal/domain"
	"github.com/6Ash6/TPIS-CRM-model/internal/store"
)

type clientsRepo struct {
	db *sql.DB
}

const clientColumns = `id, name, surname, last_name, contacts, created_at, updated_at`

func (r *clientsRepo) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	var args []any
	if search != "" {
		query += ` WHERE name LIKE ? OR surname LIKE ? OR last_name LIKE ?`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, in domain.ClientInput) (domain.Client, error) {
	contacts, err := encodeContacts(in.Contacts)
	if err != nil {
		return domain.Client{}, err
	}

	// RETURNING hands back the row exactly as written, engine-assigned id
	// and timestamps included.
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO clients (name, surname, last_name, contacts)
		 VALUES (?, ?, ?, ?)
		 RETURNING `+clientColumns,
		in.Name, in.Surname, in.LastName, contacts)

	return scanClient(row)
}

func (r *clientsRepo) UpdateClient(ctx context.Context, id int64, in domain.ClientInput) (domain.Client, error) {
	contacts, err := encodeContacts(in.Contacts)
	if err != nil {
		return domain.Client{}, err
	}

	row := r.db.QueryRowContext(ctx,
		`UPDATE clients
		 SET name = ?, surname = ?, last_name = ?, contacts = ?,
		     updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
		 WHERE id = ?
		 RETURNING `+clientColumns,
		in.Name, in.Surname, in.LastName, contacts, id)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (domain.Client, error) {
	var (
		c         domain.Client
		contacts  string
		createdAt string
		updatedAt string
	)

	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.LastName, &contacts, &createdAt, &updatedAt)
	if err != nil {
		return domain.Client{}, err
	}

	if err := json.Unmarshal([]byte(contacts), &c.Contacts); err != nil {
		return domain.Client{}, fmt.Errorf("decode contacts for client %d: %w", c.ID, err)
	}
	if c.Contacts == nil {
		c.Contacts = []domain.Contact{}
	}

	if c.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return domain.Client{}, fmt.Errorf("parse created_at for client %d: %w", c.ID, err)
	}
	if c.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return domain.Client{}, fmt.Errorf("parse updated_at for client %d: %w", c.ID, err)
	}

	return c, nil
}

// encodeContacts produces the canonical stored form: a JSON array of
// {type, value} objects. A nil sequence encodes as [].
func encodeContacts(contacts []domain.Contact) (string, error) {
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	b, err := json.Marshal(contacts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// parseTimestamp reads the RFC 3339 form written by strftime('%Y-%m-%dT%H:%M:%fZ').
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
