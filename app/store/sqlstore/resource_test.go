package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnkeep/learnkeep/app/store/sqlstore"
	"github.com/learnkeep/learnkeep/pkg/types"
)

type mockProvider struct {
	db *sqlx.DB
}

func (m *mockProvider) GetMaster() *sqlx.DB  { return m.db }
func (m *mockProvider) GetReplica() *sqlx.DB { return m.db }
func (m *mockProvider) GetTxFromCtx(ctx context.Context) *sqlx.Tx {
	return nil
}

func newMockStore(t *testing.T) (*sqlstore.ResourceStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := sqlstore.NewResourceStore(&mockProvider{db: sqlx.NewDb(db, "sqlmock")})
	return store, mock
}

func TestResourceStoreCreate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO lk_resources (id,title,description,type,url,file_url,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)").
		WithArgs("r1", "Go Basics", "A short course on Go basics", "Tutorial", "https://example.com", "", int64(100), int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Create(context.Background(), types.Resource{
		ID:          "r1",
		Title:       "Go Basics",
		Description: "A short course on Go basics",
		Type:        types.RESOURCE_TYPE_TUTORIAL,
		URL:         "https://example.com",
		CreatedAt:   100,
		UpdatedAt:   100,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceStoreCreateDefaultsTimestamps(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO lk_resources (id,title,description,type,url,file_url,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)").
		WithArgs("r1", "Go Basics", "A short course on Go basics", "Tutorial", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Create(context.Background(), types.Resource{
		ID:          "r1",
		Title:       "Go Basics",
		Description: "A short course on Go basics",
		Type:        types.RESOURCE_TYPE_TUTORIAL,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceStoreGetResource(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "type", "url", "file_url", "created_at", "updated_at"}).
		AddRow("r1", "Go Basics", "A short course on Go basics", "Tutorial", "https://example.com", "", int64(100), int64(200))

	mock.ExpectQuery("SELECT id, title, description, type, url, file_url, created_at, updated_at FROM lk_resources WHERE id = $1").
		WithArgs("r1").
		WillReturnRows(rows)

	res, err := store.GetResource(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "Go Basics", res.Title)
	assert.Equal(t, types.RESOURCE_TYPE_TUTORIAL, res.Type)
	assert.Equal(t, int64(200), res.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceStoreGetResourceNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, title, description, type, url, file_url, created_at, updated_at FROM lk_resources WHERE id = $1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetResource(context.Background(), "missing")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestResourceStoreUpdate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE lk_resources SET title = $1, description = $2, type = $3, url = $4, file_url = $5, updated_at = $6 WHERE id = $7").
		WithArgs("New title", "An updated description here", "Article", "", "", int64(300), "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Update(context.Background(), "r1", types.UpdateResourceArgs{
		Title:       "New title",
		Description: "An updated description here",
		Type:        types.RESOURCE_TYPE_ARTICLE,
	}, 300)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceStoreUpdateNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE lk_resources SET title = $1, description = $2, type = $3, url = $4, file_url = $5, updated_at = $6 WHERE id = $7").
		WithArgs("New title", "An updated description here", "Article", "", "", int64(300), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), "ghost", types.UpdateResourceArgs{
		Title:       "New title",
		Description: "An updated description here",
		Type:        types.RESOURCE_TYPE_ARTICLE,
	}, 300)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceStoreDelete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM lk_resources WHERE id = $1").
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Delete(context.Background(), "r1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceStoreListPagination(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "type", "url", "file_url", "created_at", "updated_at"}).
		AddRow("r6", "Sixth", "The sixth entry in the list", "Article", "", "", int64(100), int64(600))

	mock.ExpectQuery("SELECT id, title, description, type, url, file_url, created_at, updated_at FROM lk_resources ORDER BY updated_at DESC LIMIT 5 OFFSET 5").
		WillReturnRows(rows)

	list, err := store.ListResources(context.Background(), 2, 5)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r6", list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceStoreListZeroPageIgnoresPageSize(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "type", "url", "file_url", "created_at", "updated_at"}).
		AddRow("r1", "Only", "The only entry in the table", "Video", "", "", int64(100), int64(200))

	mock.ExpectQuery("SELECT id, title, description, type, url, file_url, created_at, updated_at FROM lk_resources ORDER BY updated_at DESC").
		WillReturnRows(rows)

	list, err := store.ListResources(context.Background(), 0, 10)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceStoreListOrderedByUpdatedAtDesc(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "type", "url", "file_url", "created_at", "updated_at"}).
		AddRow("r2", "Newer", "Most recently updated entry", "Article", "", "", int64(100), int64(500)).
		AddRow("r1", "Older", "An older entry in the list", "Video", "", "", int64(100), int64(200))

	mock.ExpectQuery("SELECT id, title, description, type, url, file_url, created_at, updated_at FROM lk_resources ORDER BY updated_at DESC").
		WillReturnRows(rows)

	list, err := store.ListResources(context.Background(), types.NO_PAGINATION, types.NO_PAGINATION)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID)
	assert.GreaterOrEqual(t, list[0].UpdatedAt, list[1].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
