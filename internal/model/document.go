package model

import "time"

// Document represents stored file metadata owned by a client. FileURL is an
// opaque reference to externally hosted content; the system never checks
// that it resolves. Size is a display string, not a byte count.
type Document struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Type        *string   `json:"type"`
	FileURL     string    `json:"file_url"`
	Size        *string   `json:"size"`
	UploadedBy  *string   `json:"uploaded_by"`
	ClientName  *string   `json:"client_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentInput carries caller-supplied fields for creating a document.
type DocumentInput struct {
	ClientID    int64   `json:"client_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	FileURL     string  `json:"file_url"`
	Size        *string `json:"size"`
	UploadedBy  *string `json:"uploaded_by"`
}

// DocumentUpdate carries the partially updatable fields of a document.
// Nil means "keep the stored value" — the opposite of ClientInput's
// overwrite-all contract.
type DocumentUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
}
