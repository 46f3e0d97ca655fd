package service

import (
	"context"
	"errors"

	"github.com/6Ash6/TPIS-CRM-model/internal/domain"
	"github.com/6Ash6/TPIS-CRM-model/internal/store"
	"github.com/6Ash6/TPIS-CRM-model/pkg/slogx"
)

// ErrClientNotFound is returned when the referenced client id does not exist.
var ErrClientNotFound = errors.New("client not found")

// ClientService orchestrates validation and persistence for client records.
// Validation always runs before any storage call, so an invalid payload is
// reported as such even when the target id does not exist.
type ClientService struct {
	Store store.Store
}

// ListClients returns all clients, optionally filtered by a substring match
// across name, surname and last name.
func (s *ClientService) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx, search)
}

// GetClient fetches one client by id.
func (s *ClientService) GetClient(ctx context.Context, id int64) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}

// CreateClient validates and persists a new client. Nothing is written when
// validation fails.
func (s *ClientService) CreateClient(ctx context.Context, in domain.ClientInput) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := in.Validate(); err != nil {
		return domain.Client{}, err
	}

	c, err := s.Store.Clients().CreateClient(ctx, in)
	if err != nil {
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", c.ID)
	return c, nil
}

// UpdateClient validates and overwrites an existing client. The id and
// created_at are immutable; updated_at is refreshed by storage.
func (s *ClientService) UpdateClient(ctx context.Context, id int64, in domain.ClientInput) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := in.Validate(); err != nil {
		return domain.Client{}, err
	}

	c, err := s.Store.Clients().UpdateClient(ctx, id, in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		l.Error("failed to update client", "error", err, "client_id", id)
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", id)
	return c, nil
}

// DeleteClient removes a client row outright; there is no soft delete.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	err := s.Store.Clients().DeleteClient(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		l.Error("failed to delete client", "error", err, "client_id", id)
		return err
	}

	l.Info("client deleted", "client_id", id)
	return nil
}
