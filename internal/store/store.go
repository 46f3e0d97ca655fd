package store

import (
	"context"
	"errors"

	"github.com/6Ash6/TPIS-CRM-model/internal/domain"
)

// ErrNotFound is returned when a referenced row does not exist. Drivers map
// their engine-native miss (e.g. sql.ErrNoRows, zero rows affected) to this.
var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if we ever outgrow a single file) implement this. The handle is
// explicitly owned by the application and closed at shutdown.
type Store interface {
	Clients() Clients

	ApplyMigrations() error

	// Ping verifies the underlying connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}

type Clients interface {
	// ListClients returns rows in insertion order. A non-empty search term
	// filters with the engine's substring match across name, surname and
	// last_name; case behaviour is whatever the engine's LIKE does.
	ListClients(ctx context.Context, search string) ([]domain.Client, error)

	// GetClientByID returns ErrNotFound when no row matches id.
	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// CreateClient inserts a validated payload. The engine assigns the id
	// and both timestamps; the returned Client is the row as written.
	CreateClient(ctx context.Context, in domain.ClientInput) (domain.Client, error)

	// UpdateClient overwrites the mutable fields and refreshes updated_at
	// with the engine clock. ErrNotFound when id does not exist.
	UpdateClient(ctx context.Context, id int64, in domain.ClientInput) (domain.Client, error)

	// DeleteClient removes the row. ErrNotFound when zero rows are affected.
	DeleteClient(ctx context.Context, id int64) error
}
