package admin

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(key string) *fiber.App {
	app := fiber.New()
	app.Get("/api/admin/ping", RequireAPIKey(key), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"matching key passes", "s3cret", "s3cret", fiber.StatusOK},
		{"surrounding whitespace is ignored", " s3cret ", "s3cret", fiber.StatusOK},
		{"wrong key is unauthorized", "s3cret", "nope", fiber.StatusUnauthorized},
		{"missing header is unauthorized", "s3cret", "", fiber.StatusUnauthorized},
		{"unconfigured key rejects everything", "", "s3cret", fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGuardedApp(tt.configured)

			req := httptest.NewRequest("GET", "/api/admin/ping", nil)
			if tt.header != "" {
				req.Header.Set("X-Admin-Key", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
