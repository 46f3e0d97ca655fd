package domain

import "time"

// Client is a contact-list record. ID and both timestamps are assigned by
// storage and never set by callers.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	LastName  string    `json:"lastName"`
	Contacts  []Contact `json:"contacts"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Contact is a single way of reaching a client, e.g. {"email", "a@b.com"}
// or {"phone", "+123"}. Both fields are non-empty in any persisted client.
type Contact struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
