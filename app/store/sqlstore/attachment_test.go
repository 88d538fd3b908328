package sqlstore_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnkeep/learnkeep/app/store/sqlstore"
	"github.com/learnkeep/learnkeep/pkg/types"
)

func newMockAttachmentStore(t *testing.T) (*sqlstore.AttachmentStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := sqlstore.NewAttachmentStore(&mockProvider{db: sqlx.NewDb(db, "sqlmock")})
	return store, mock
}

func TestAttachmentStoreCreate(t *testing.T) {
	store, mock := newMockAttachmentStore(t)

	mock.ExpectExec("INSERT INTO lk_attachments (resource_id,file,file_size,kind,status,created_at) VALUES ($1,$2,$3,$4,$5,$6)").
		WithArgs("", "uploads/abc123.png", int64(2048), "image", types.ATTACHMENT_STATUS_ACTIVE, int64(100)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Create(context.Background(), types.Attachment{
		File:      "uploads/abc123.png",
		FileSize:  2048,
		Kind:      types.ATTACHMENT_KIND_IMAGE,
		Status:    types.ATTACHMENT_STATUS_ACTIVE,
		CreatedAt: 100,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentStoreBindResource(t *testing.T) {
	store, mock := newMockAttachmentStore(t)

	mock.ExpectExec("UPDATE lk_attachments SET resource_id = $1 WHERE file = $2").
		WithArgs("r1", "uploads/abc123.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.BindResource(context.Background(), "uploads/abc123.png", "r1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentStoreUpdateStatus(t *testing.T) {
	store, mock := newMockAttachmentStore(t)

	mock.ExpectExec("UPDATE lk_attachments SET status = $1 WHERE file = $2").
		WithArgs(types.ATTACHMENT_STATUS_DELETED, "uploads/abc123.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateStatus(context.Background(), "uploads/abc123.png", types.ATTACHMENT_STATUS_DELETED)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
