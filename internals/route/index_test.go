package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	database "github.com/jayehzzz/my-church-tracker/internals/databases"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	db := testdb.Open(t, database.Models()...)
	app := fiber.New()
	SetupRoutes(app, db, "test")
	return app
}

func TestHealth(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "test", body["environment"])
}

func TestMountedRoutes(t *testing.T) {
	app := newApp(t)

	for _, path := range []string{
		"/api/people",
		"/api/evangelism",
		"/api/services",
		"/api/attendance",
		"/api/meetings",
		"/api/visitations",
		"/api/activities",
		"/api/dashboard/kpis",
		"/api/dashboard/attendance-chart",
		"/api/dashboard/recent-activities",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestSyncUnknownServiceIs404(t *testing.T) {
	app := newApp(t)

	body := `{"service_id":"6f1c9a56-0d53-4f0e-9c55-0c8a6f3b2a11","attendance_data":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
