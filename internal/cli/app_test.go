package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/realtydesk/internal/config"
	"github.com/dmitrijs2005/realtydesk/internal/logging"
	"github.com/dmitrijs2005/realtydesk/internal/repositories/credentials"
	"github.com/dmitrijs2005/realtydesk/internal/repositories/sessions"
	"github.com/dmitrijs2005/realtydesk/internal/router"
	"github.com/dmitrijs2005/realtydesk/internal/services"
	"github.com/dmitrijs2005/realtydesk/internal/storage"
)

// newTestApp assembles an App over the in-memory driver with output captured
// in the returned buffer.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	store := storage.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	logger := logging.NewDiscardLogger()
	userRepo := credentials.NewSlotRepository(store, logger)
	sessRepo := sessions.NewSlotRepository(store, logger)

	var out bytes.Buffer
	a := &App{
		config:   &config.Config{StorageDriver: storage.DriverMemory},
		logger:   logger,
		store:    store,
		auth:     services.NewAuthService(userRepo, sessRepo, logger),
		accounts: services.NewAccountsService(userRepo, logger),
		router:   router.New(),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
	}
	a.registerRoutes()
	return a, &out
}

// scriptInput replaces the interactive input seams with canned answers for
// the duration of the test. Text prompts and password prompts consume from
// separate queues.
func scriptInput(t *testing.T, text []string, passwords []string) {
	t.Helper()

	origText, origPass := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(text) == 0 {
			return "", io.EOF
		}
		v := text[0]
		text = text[1:]
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if len(passwords) == 0 {
			return "", io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return v, nil
	}
}

func TestApp_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	scriptInput(t, []string{"Jane", "Doe", "jane@example.com"}, []string{"hunter22", "hunter22"})
	require.NoError(t, a.Register(ctx))
	assert.Contains(t, out.String(), "Account created")
	// Registration lands on the login page, not a signed-in session.
	assert.Equal(t, router.PathLogin, a.router.Current())
	assert.False(t, a.auth.IsAuthenticated(ctx))

	out.Reset()
	scriptInput(t, []string{"jane@example.com"}, []string{"hunter22"})
	require.NoError(t, a.Login(ctx))
	assert.Contains(t, out.String(), "Signed in as Jane Doe")
	assert.Equal(t, router.PathHome, a.router.Current())
	assert.True(t, a.auth.IsAuthenticated(ctx))
}

func TestApp_RegisterPasswordMismatch(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	scriptInput(t, []string{"Jane", "Doe", "jane@example.com"}, []string{"hunter22", "different"})
	require.NoError(t, a.Register(ctx))
	assert.Contains(t, out.String(), "passwords do not match")
	assert.False(t, a.auth.IsAuthenticated(ctx))
}

func TestApp_LoginFailureStaysOnLoginPage(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	scriptInput(t, []string{"ghost@example.com"}, []string{"whatever"})
	require.NoError(t, a.Login(ctx))
	assert.Contains(t, out.String(), "not found")
	assert.Equal(t, router.PathLogin, a.router.Current())
}

func TestApp_GuardedAccountPage(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	require.NoError(t, a.Open(ctx, router.PathAccount))
	assert.Equal(t, router.PathLogin, a.router.Current())
	assert.NotContains(t, out.String(), "My account")
}

func TestApp_UsersCommandDeniedForRegularUser(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	scriptInput(t, []string{"Jane", "Doe", "jane@example.com"}, []string{"hunter22", "hunter22"})
	require.NoError(t, a.Register(ctx))
	scriptInput(t, []string{"jane@example.com"}, []string{"hunter22"})
	require.NoError(t, a.Login(ctx))

	out.Reset()
	require.NoError(t, a.Users(ctx, nil))
	assert.Equal(t, router.PathLogin, a.router.Current())
	assert.NotContains(t, out.String(), "User management")
}

func TestApp_AdminDashboardFlow(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	// Seed a regular account, then sign in with the admin bypass.
	scriptInput(t, []string{"Jane", "Doe", "jane@example.com"}, []string{"hunter22", "hunter22"})
	require.NoError(t, a.Register(ctx))
	scriptInput(t, []string{"admin@enkonix.in"}, []string{"admin123"})
	require.NoError(t, a.Login(ctx))

	out.Reset()
	require.NoError(t, a.Users(ctx, nil))
	assert.Equal(t, router.PathAdmin, a.router.Current())
	assert.Contains(t, out.String(), "User management")
	assert.Contains(t, out.String(), "jane@example.com")

	// Status filter: Jane has never logged in.
	out.Reset()
	require.NoError(t, a.Users(ctx, []string{"--status=active"}))
	assert.Contains(t, out.String(), "No users match")

	// Delete with confirmation.
	users, err := a.accounts.List(ctx, services.AccountFilter{})
	require.NoError(t, err)
	require.Len(t, users, 1)

	a.reader = bufio.NewReader(strings.NewReader("y\n"))
	out.Reset()
	require.NoError(t, a.Users(ctx, []string{"delete", users[0].ID}))
	assert.Contains(t, out.String(), "User deleted")

	remaining, err := a.accounts.List(ctx, services.AccountFilter{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestApp_DeleteCancelled(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	scriptInput(t, []string{"Jane", "Doe", "jane@example.com"}, []string{"hunter22", "hunter22"})
	require.NoError(t, a.Register(ctx))
	scriptInput(t, []string{"admin@enkonix.com"}, []string{"admin123"})
	require.NoError(t, a.Login(ctx))

	users, err := a.accounts.List(ctx, services.AccountFilter{})
	require.NoError(t, err)
	require.Len(t, users, 1)

	a.reader = bufio.NewReader(strings.NewReader("n\n"))
	out.Reset()
	require.NoError(t, a.Users(ctx, []string{"delete", users[0].ID}))
	assert.Contains(t, out.String(), "Cancelled")

	remaining, err := a.accounts.List(ctx, services.AccountFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestApp_LogoutReturnsHome(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	scriptInput(t, []string{"admin@enkonix.in"}, []string{"admin123"})
	require.NoError(t, a.Login(ctx))
	require.True(t, a.auth.IsAuthenticated(ctx))

	out.Reset()
	require.NoError(t, a.Logout(ctx))
	assert.Contains(t, out.String(), "Signed out")
	assert.Equal(t, router.PathHome, a.router.Current())
	assert.False(t, a.auth.IsAuthenticated(ctx))
}

func TestApp_WhoAmI(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)

	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Not signed in")

	scriptInput(t, []string{"admin@enkonix.in"}, []string{"admin123"})
	require.NoError(t, a.Login(ctx))

	out.Reset()
	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "administrator")
}
