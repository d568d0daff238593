package workspace

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-careers/stride/internal/objstore"
	"github.com/stride-careers/stride/pkg/types"
)

func TestDocumentUploadDownload(t *testing.T) {
	fx := newFixture(t, "u-1")
	payload := []byte("%PDF-1.4 resume")

	doc, err := fx.ws.Documents().Upload("resume.pdf", payload, UploadInput{
		DocumentType: "resume",
		MimeType:     "application/pdf",
		Description:  "Latest version",
		Tags:         []string{"2026"},
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", doc.UserID)
	assert.Equal(t, "resume.pdf", doc.Name)
	assert.Equal(t, int64(len(payload)), doc.FileSize)
	assert.True(t, strings.HasPrefix(doc.FilePath, "u-1/"), "key scoped under the principal")
	assert.True(t, strings.HasSuffix(doc.FilePath, ".pdf"), "original extension kept")

	data, got, err := fx.ws.Documents().Download(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, doc.ID, got.ID)
}

func TestDocumentListNewestFirst(t *testing.T) {
	fx := newFixture(t, "u-1")

	_, err := fx.ws.Documents().Upload("old.pdf", []byte("a"), UploadInput{})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = fx.ws.Documents().Upload("new.pdf", []byte("b"), UploadInput{})
	require.NoError(t, err)

	docs, err := fx.ws.Documents().List()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "new.pdf", docs[0].Name)
	assert.Equal(t, "old.pdf", docs[1].Name)
}

func TestDocumentRemove(t *testing.T) {
	fx := newFixture(t, "u-1")

	doc, err := fx.ws.Documents().Upload("resume.pdf", []byte("bytes"), UploadInput{})
	require.NoError(t, err)

	require.NoError(t, fx.ws.Documents().Remove(doc.ID))

	docs, err := fx.ws.Documents().List()
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = fx.objects.Download(doc.FilePath)
	assert.ErrorIs(t, err, types.ErrObjectNotFound, "payload gone from the bucket")
}

func TestDocumentRemoveKeepsRowWhenObjectDeleteFails(t *testing.T) {
	fx := newFixture(t, "u-1")

	doc, err := fx.ws.Documents().Upload("resume.pdf", []byte("bytes"), UploadInput{})
	require.NoError(t, err)

	// Same store, but a bucket whose removals fail. The metadata row must
	// survive so it never points at a missing object.
	broken := &breakableObjects{ObjectStore: fx.objects, removeErr: errors.New("bucket unavailable")}
	ws := New(fx.store, broken, types.StaticIdentity("u-1"))

	err = ws.Documents().Remove(doc.ID)
	require.Error(t, err)
	var remote *types.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "remove", remote.Op)
	assert.Equal(t, types.DocumentsBucket, remote.Collection)

	rows, err := fx.store.Select(types.DocumentsCollection, types.Query{
		Filter: map[string]any{"id": doc.ID},
	})
	require.NoError(t, err)
	assert.Len(t, rows, 1, "row kept when the object could not be deleted")
}

func TestDocumentUploadOrphanOnMetadataFailure(t *testing.T) {
	fx := newFixture(t, "u-1")

	recording := &breakableObjects{ObjectStore: objstore.NewMem()}
	broken := &failingStore{Store: fx.store, insertErr: errors.New("store unavailable")}
	ws := New(broken, recording, types.StaticIdentity("u-1"))

	_, err := ws.Documents().Upload("resume.pdf", []byte("bytes"), UploadInput{})
	require.Error(t, err)
	var remote *types.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "insert", remote.Op)

	// The object went first and stays behind as an orphan.
	require.Len(t, recording.uploaded, 1)
	_, err = recording.Download(recording.uploaded[0])
	assert.NoError(t, err)
}

func TestStorageKey(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	want := fmt.Sprintf("u-1/%d.pdf", now.UnixMilli())
	assert.Equal(t, want, storageKey("u-1", "resume.pdf", now))

	assert.Equal(t, fmt.Sprintf("u-1/%d", now.UnixMilli()),
		storageKey("u-1", "no-extension", now))
}
