// Package models holds the wire types exchanged with a ByteStash server.
package models

// Fragment is one file inside a snippet. Ids and positions are assigned by
// the server; the client only ever reads them.
type Fragment struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	Code     string `json:"code"`
	Language string `json:"language"`
	Position int    `json:"position"`
}

// Snippet is a titled bundle of fragments with metadata. UpdatedAt and
// ShareCount are server-assigned and read-only.
type Snippet struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Categories  []string   `json:"categories"`
	Fragments   []Fragment `json:"fragments"`
	UpdatedAt   string     `json:"updated_at"`
	ShareCount  int        `json:"share_count"`
}

// UploadRequest is the client-local input for create and update. It exists
// only for the duration of one call and is never persisted.
type UploadRequest struct {
	Title       string
	Description string
	IsPublic    bool
	Categories  string
	Files       []string
}
