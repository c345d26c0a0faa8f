package types

import "time"

// DocumentVersion is one entry of a document's stored version history.
// The field exists for manual snapshots; nothing populates it
// automatically on update.
type DocumentVersion struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Changes   string    `json:"changes"`
}

// CreateDocumentRequest is the POST /documents payload.
type CreateDocumentRequest struct {
	Title   string   `json:"title" binding:"required"`
	Type    string   `json:"type" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// UpdateDocumentRequest carries partial document edits.
type UpdateDocumentRequest struct {
	Title     *string  `json:"title"`
	Type      *string  `json:"type"`
	Content   *string  `json:"content"`
	Tags      []string `json:"tags"`
	IsStarred *bool    `json:"isStarred"`
}

// DocumentFilter is the allow-listed filter set for listing documents.
// Search matches title substrings or tag membership, case-insensitive.
type DocumentFilter struct {
	Type    string
	Status  string
	Starred *bool
	Search  string
}
