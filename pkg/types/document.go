package types

import "time"

// Document is the metadata row for an uploaded binary. FilePath is the
// object key in the documents bucket; the payload itself lives in the
// ObjectStore.
type Document struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	DocumentType string    `json:"document_type"`
	FilePath     string    `json:"file_path"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	IsPrimary    bool      `json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DocumentFromRow hydrates a Document from a store row.
func DocumentFromRow(r Row) Document {
	return Document{
		ID:           rowString(r, "id"),
		UserID:       rowString(r, "user_id"),
		Name:         rowString(r, "name"),
		DocumentType: rowString(r, "document_type"),
		FilePath:     rowString(r, "file_path"),
		FileSize:     rowInt64(r, "file_size"),
		MimeType:     rowString(r, "mime_type"),
		Description:  rowString(r, "description"),
		Tags:         rowStrings(r, "tags"),
		IsPrimary:    rowBool(r, "is_primary"),
		CreatedAt:    rowTime(r, "created_at"),
		UpdatedAt:    rowTime(r, "updated_at"),
	}
}
