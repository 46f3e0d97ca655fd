package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestCoerceClientInput(t *testing.T) {
	t.Parallel()

	t.Run("trims scalar fields", func(t *testing.T) {
		in := CoerceClientInput(decodeObject(t, `{
			"name": "  John ",
			"surname": "\tDoe\n",
			"lastName": " Smith "
		}`))

		require.Equal(t, "John", in.Name)
		require.Equal(t, "Doe", in.Surname)
		require.Equal(t, "Smith", in.LastName)
		require.Empty(t, in.Contacts)
	})

	t.Run("non-string scalars collapse to empty", func(t *testing.T) {
		in := CoerceClientInput(decodeObject(t, `{
			"name": 42,
			"surname": null,
			"lastName": {"nested": true}
		}`))

		require.Empty(t, in.Name)
		require.Empty(t, in.Surname)
		require.Empty(t, in.LastName)
	})

	t.Run("missing fields become empty strings", func(t *testing.T) {
		in := CoerceClientInput(decodeObject(t, `{}`))

		require.Empty(t, in.Name)
		require.Empty(t, in.Surname)
		require.Empty(t, in.LastName)
		require.NotNil(t, in.Contacts)
		require.Empty(t, in.Contacts)
	})

	t.Run("nil object behaves like an empty one", func(t *testing.T) {
		in := CoerceClientInput(nil)

		require.Empty(t, in.Name)
		require.NotNil(t, in.Contacts)
	})

	t.Run("non-array contacts treated as empty sequence", func(t *testing.T) {
		in := CoerceClientInput(decodeObject(t, `{"contacts": "not-a-list"}`))
		require.Empty(t, in.Contacts)

		in = CoerceClientInput(decodeObject(t, `{"contacts": {"type": "email"}}`))
		require.Empty(t, in.Contacts)
	})

	t.Run("contact elements coerced field by field", func(t *testing.T) {
		in := CoerceClientInput(decodeObject(t, `{"contacts": [
			{"type": " email ", "value": " a@b.com "},
			{"type": 5, "value": null},
			"not-an-object"
		]}`))

		require.Len(t, in.Contacts, 3)
		require.Equal(t, Contact{Type: "email", Value: "a@b.com"}, in.Contacts[0])
		require.Equal(t, Contact{}, in.Contacts[1])
		require.Equal(t, Contact{}, in.Contacts[2])
	})

	t.Run("contact order preserved", func(t *testing.T) {
		in := CoerceClientInput(decodeObject(t, `{"contacts": [
			{"type": "email", "value": "a@b.com"},
			{"type": "phone", "value": "+1"},
			{"type": "phone", "value": "+2"}
		]}`))

		require.Equal(t, []Contact{
			{Type: "email", Value: "a@b.com"},
			{Type: "phone", Value: "+1"},
			{Type: "phone", Value: "+2"},
		}, in.Contacts)
	})
}
