package crm_test

import (
	"testing"

	"github.com/6Ash6/TPIS-CRM-model/pkg/crmsdk"
	"github.com/stretchr/testify/require"
)

// TestClientLifecycle walks a record through create, read, update and delete
// over a real HTTP listener.
func TestClientLifecycle(t *testing.T) {
	ctx := t.Context()
	sdk := setupServer(t)

	created, err := sdk.CreateClient(ctx, crmsdk.ClientPayload{
		Name:    "John",
		Surname: "Doe",
		Contacts: []crmsdk.Contact{
			{Type: "email", Value: "john@example.com"},
			{Type: "phone", Value: "+61400000000"},
		},
	})
	require.NoError(t, err)
	require.Positive(t, created.ID)
	require.Len(t, created.Contacts, 2)
	require.False(t, created.CreatedAt.IsZero())

	got, err := sdk.GetClient(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	updated, err := sdk.UpdateClient(ctx, created.ID, crmsdk.ClientPayload{
		Name:     "Johnny",
		Surname:  "Doe",
		LastName: "Boy",
	})
	require.NoError(t, err)
	require.Equal(t, "Johnny", updated.Name)
	require.Equal(t, "Boy", updated.LastName)
	require.Empty(t, updated.Contacts)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, sdk.DeleteClient(ctx, created.ID))

	_, err = sdk.GetClient(ctx, created.ID)
	var apiErr *crmsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.IsNotFound())
}

// TestSearchAcrossNameFields verifies the search term matches substrings in
// any of the three name columns.
func TestSearchAcrossNameFields(t *testing.T) {
	ctx := t.Context()
	sdk := setupServer(t)

	john := seedClient(t, sdk, "John", "Doe")
	seedClient(t, sdk, "Jane", "Smith")

	all, err := sdk.ListClients(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	matches, err := sdk.ListClients(ctx, "Doe")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, john.ID, matches[0].ID)

	none, err := sdk.ListClients(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}

// TestValidationOverTheWire verifies field errors survive the round trip.
func TestValidationOverTheWire(t *testing.T) {
	sdk := setupServer(t)

	_, err := sdk.CreateClient(t.Context(), crmsdk.ClientPayload{
		Contacts: []crmsdk.Contact{{Type: "email"}},
	})

	var verr *crmsdk.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []crmsdk.FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "surname", Message: "surname is required"},
		{Field: "contacts", Message: "one or more contacts incomplete"},
	}, verr.Errors)
}
