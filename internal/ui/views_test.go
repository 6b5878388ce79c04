package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/realtydesk/internal/models"
)

func TestHomePage(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		out := HomePage(nil)
		assert.Contains(t, out, "RealtyDesk")
		assert.Contains(t, out, "login")
	})
	t.Run("signed in", func(t *testing.T) {
		u := models.UserRecord{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
		out := HomePage(models.NewUserSession(u, time.Now()))
		assert.Contains(t, out, "Jane Doe")
		assert.NotContains(t, out, "users")
	})
	t.Run("admin", func(t *testing.T) {
		out := HomePage(models.NewAdminSession("admin@enkonix.in", time.Now()))
		assert.Contains(t, out, "users")
	})
}

func TestAccountPage(t *testing.T) {
	u := models.UserRecord{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	sess := models.NewUserSession(u, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	out := AccountPage(sess)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@example.com")
	assert.NotContains(t, out, "administrator")
}

func TestAdminDashboardPage(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Contains(t, AdminDashboardPage(nil), "No users match")
	})
	t.Run("mixed statuses", func(t *testing.T) {
		users := []models.UserRecord{
			{ID: "1", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
				LastLoginAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
			{ID: "2", FirstName: "Bob", LastName: "Ray", Email: "bob@example.com"},
		}
		out := AdminDashboardPage(users)
		assert.Contains(t, out, "active")
		assert.Contains(t, out, "never logged in")
		assert.Contains(t, out, "2 user(s)")
	})
}

func TestErrorLine(t *testing.T) {
	assert.Contains(t, ErrorLine(errors.New("boom")), "boom")
}
