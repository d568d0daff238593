package workspace

import (
	"fmt"
	"path"
	"time"

	"github.com/stride-careers/stride/pkg/types"
)

// Documents is the sync accessor for document metadata and payloads.
// Every document is two pieces of state: a metadata row in the store and
// a binary object in the bucket, tied together by file_path.
type Documents struct {
	ws *Workspace
}

// UploadInput carries the caller-supplied metadata for a new document.
type UploadInput struct {
	DocumentType string
	MimeType     string
	Description  string
	Tags         []string
	IsPrimary    bool
}

// List returns all visible documents, newest first. Row visibility is
// the store's concern, not checked locally.
func (d *Documents) List() ([]types.Document, error) {
	rows, err := d.ws.list(types.DocumentsCollection, types.Query{
		OrderBy: []types.Order{{Column: "created_at", Desc: true}},
	})
	if err != nil {
		return nil, err
	}
	docs := make([]types.Document, len(rows))
	for i, r := range rows {
		docs[i] = types.DocumentFromRow(r)
	}
	return docs, nil
}

// Upload stores the payload in the bucket and then the metadata row.
// The object goes first; if the metadata insert fails afterward the
// object is left orphaned under its key (logged, not compensated).
func (d *Documents) Upload(fileName string, data []byte, in UploadInput) (*types.Document, error) {
	uid, err := d.ws.requireUser()
	if err != nil {
		return nil, err
	}

	key := storageKey(uid, fileName, time.Now())
	if err := d.ws.objects.Upload(key, data); err != nil {
		return nil, types.NewRemoteError("upload", types.DocumentsBucket, err)
	}

	row, err := d.ws.store.Insert(types.DocumentsCollection, types.Row{
		"user_id":       uid,
		"name":          fileName,
		"document_type": in.DocumentType,
		"file_path":     key,
		"file_size":     int64(len(data)),
		"mime_type":     in.MimeType,
		"description":   in.Description,
		"tags":          in.Tags,
		"is_primary":    in.IsPrimary,
	})
	if err != nil {
		d.ws.log.Warn().Str("key", key).Msg("metadata insert failed; uploaded object orphaned")
		return nil, types.NewRemoteError("insert", types.DocumentsCollection, err)
	}
	d.ws.invalidate(types.DocumentsCollection)
	created := types.DocumentFromRow(row)
	d.ws.log.Info().Str("document_id", created.ID).Str("key", key).Msg("document uploaded")
	return &created, nil
}

// Remove deletes the binary object and then the metadata row. The object
// goes first: if its deletion fails the row is kept, so no metadata ever
// points at a missing object. The reverse ordering would risk orphaned,
// unreachable objects instead.
func (d *Documents) Remove(id string) error {
	if _, err := d.ws.requireUser(); err != nil {
		return err
	}
	rows, err := d.ws.store.Select(types.DocumentsCollection, types.Query{
		Filter: map[string]any{"id": id},
	})
	if err != nil {
		return types.NewRemoteError("select", types.DocumentsCollection, err)
	}
	if len(rows) == 0 {
		return types.NewRemoteError("select", types.DocumentsCollection, types.ErrNotFound)
	}
	doc := types.DocumentFromRow(rows[0])

	if err := d.ws.objects.Remove(doc.FilePath); err != nil {
		return types.NewRemoteError("remove", types.DocumentsBucket, err)
	}
	if err := d.ws.store.Delete(types.DocumentsCollection, id); err != nil {
		return types.NewRemoteError("delete", types.DocumentsCollection, err)
	}
	d.ws.invalidate(types.DocumentsCollection)
	d.ws.log.Info().Str("document_id", id).Msg("document removed")
	return nil
}

// Download resolves the document's stored key and returns its payload
// alongside the metadata. Failures are non-fatal to the caller's view:
// nothing is mutated and nothing is invalidated.
func (d *Documents) Download(id string) ([]byte, *types.Document, error) {
	rows, err := d.ws.store.Select(types.DocumentsCollection, types.Query{
		Filter: map[string]any{"id": id},
	})
	if err != nil {
		return nil, nil, types.NewRemoteError("select", types.DocumentsCollection, err)
	}
	if len(rows) == 0 {
		return nil, nil, types.NewRemoteError("select", types.DocumentsCollection, types.ErrNotFound)
	}
	doc := types.DocumentFromRow(rows[0])

	data, err := d.ws.objects.Download(doc.FilePath)
	if err != nil {
		return nil, nil, types.NewRemoteError("download", types.DocumentsBucket, err)
	}
	return data, &doc, nil
}

// storageKey derives a collision-free bucket key from the principal, the
// current time, and the original file extension.
func storageKey(userID, fileName string, now time.Time) string {
	return fmt.Sprintf("%s/%d%s", userID, now.UnixMilli(), path.Ext(fileName))
}
