package model

import "time"

// Client represents a CRM contact record.
// This is a pure domain model with no database-specific dependencies or tags.
// Nullable columns map to pointer fields so that NULL survives the round trip.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Company   *string   `json:"company"`
	Phone     *string   `json:"phone"`
	Location  *string   `json:"location"`
	Services  []string  `json:"services"`
	Budget    *float64  `json:"budget"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientInput carries the caller-supplied fields for creating or updating a
// client. ID and CreatedAt are always server-assigned and never accepted
// from the caller. On update every field here overwrites the stored row,
// including absent fields becoming NULL.
type ClientInput struct {
	Name     string   `json:"name"`
	Email    *string  `json:"email"`
	Company  *string  `json:"company"`
	Phone    *string  `json:"phone"`
	Location *string  `json:"location"`
	Services []string `json:"services"`
	Budget   *float64 `json:"budget"`
	Notes    *string  `json:"notes"`
}
