package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"movie_catalog/config"
	"movie_catalog/database"
	"movie_catalog/helper"
	"movie_catalog/model"
	"movie_catalog/router"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		SiteURL:      "http://localhost:3000",
		CacheEnabled: false,
	}

	app := fiber.New()
	router.SetupRoutes(app, db, cfg, nil, nil)
	return app, db
}

// doRequest performs an in-process request. A non-empty token is sent as a
// bearer header. The body, when non-nil, is JSON-encoded.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, raw
}

func adminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	hash, err := helper.HashPassword("Abcdef1!")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := model.Administrator{Email: "admin@example.com", Password: hash}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	token, err := helper.GenerateToken(admin.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func decodeJSON(t *testing.T, raw []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
}

func errorMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, raw, &body)
	return body.Error
}

func testMovie(title string) *model.Movie {
	return &model.Movie{
		Title:    title,
		Slug:     slug.Make(title),
		Duration: 120,
		Language: "English",
		Director: "Jane Doe",
		Synopsis: "Two hours of things happening.",
	}
}
