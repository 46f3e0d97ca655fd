package domain

import "strings"

// ClientInput is the canonical, trimmed form of a create/update payload.
// It is built with CoerceClientInput and is immutable once validated.
type ClientInput struct {
	Name     string    `json:"name" validate:"required"`
	Surname  string    `json:"surname" validate:"required"`
	LastName string    `json:"lastName"`
	Contacts []Contact `json:"contacts"`
}

// CoerceClientInput normalises a decoded JSON object into a ClientInput.
// Scalar fields are kept only when they are strings, then trimmed; anything
// missing, null or of another type collapses to the empty string. A contacts
// field that is not an array is treated as an empty sequence, and each
// element is coerced by the same rules.
func CoerceClientInput(raw map[string]any) ClientInput {
	in := ClientInput{
		Name:     coerceString(raw["name"]),
		Surname:  coerceString(raw["surname"]),
		LastName: coerceString(raw["lastName"]),
		Contacts: []Contact{},
	}

	elems, ok := raw["contacts"].([]any)
	if !ok {
		return in
	}

	for _, elem := range elems {
		fields, _ := elem.(map[string]any)
		in.Contacts = append(in.Contacts, Contact{
			Type:  coerceString(fields["type"]),
			Value: coerceString(fields["value"]),
		})
	}

	return in
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
