package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/realtydesk/internal/logging"
	"github.com/dmitrijs2005/realtydesk/internal/models"
	"github.com/dmitrijs2005/realtydesk/internal/storage"
)

func setupRepo(t *testing.T) (*SlotRepository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewSlotRepository(store, logging.NewDiscardLogger()), store
}

func TestGet_AbsentSlot_ReturnsNilNil(t *testing.T) {
	r, _ := setupRepo(t)

	sess, err := r.Get(context.Background())
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestSetAndGet_UserSession(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	in := models.NewUserSession(models.UserRecord{
		ID: "u1", FirstName: "Jane", LastName: "Doe", Email: "jane@x.com",
	}, at)
	require.NoError(t, r.Set(ctx, in))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsAdmin())
	assert.Equal(t, "Jane", got.User.FirstName)
	assert.True(t, got.LoginTime.Equal(at))
}

func TestSetAndGet_AdminSession(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, models.NewAdminSession("admin@enkonix.in", time.Now())))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsAdmin())
	assert.Equal(t, "admin", got.User.ID)
}

func TestGet_MalformedSlot_ReturnsNilNil(t *testing.T) {
	r, store := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.SlotSession, []byte(`garbage`)))

	sess, err := r.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestGet_UnknownVariant_ReturnsNilNil(t *testing.T) {
	r, store := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.SlotSession,
		[]byte(`{"schema_version":1,"session":{"kind":"mystery"}}`)))

	sess, err := r.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestGet_MigratesVersionZeroUserRecord(t *testing.T) {
	r, store := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.SlotSession, []byte(
		`{"id":"u1","firstName":"Jane","lastName":"Doe","email":"jane@x.com","loginTime":"2025-03-01T12:00:00Z"}`)))

	sess, err := r.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.False(t, sess.IsAdmin())
	assert.Equal(t, "jane@x.com", sess.User.Email)
}

func TestGet_MigratesVersionZeroAdminRecord(t *testing.T) {
	r, store := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.SlotSession, []byte(
		`{"id":"admin","firstName":"Admin","email":"admin@enkonix.in","role":"admin","isAdmin":true}`)))

	sess, err := r.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.True(t, sess.IsAdmin())
}

func TestClear_Idempotent(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, models.NewUserSession(models.UserRecord{ID: "u1"}, time.Now())))
	require.NoError(t, r.Clear(ctx))

	sess, err := r.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)

	require.NoError(t, r.Clear(ctx))
}
