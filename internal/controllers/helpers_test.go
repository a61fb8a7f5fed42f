package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"challan_tracker/internal/config"
	"challan_tracker/internal/middleware"
	"challan_tracker/internal/models"
	"challan_tracker/internal/routes"
)

// setupTestRouter builds the full route surface over an in-memory
// store.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	// A second pooled connection would see a fresh empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	return routes.SetupRouter(db), db
}

func createOfficer(t *testing.T, db *gorm.DB, name, email string, role models.Role, location string) (models.Officer, string) {
	t.Helper()
	officer := models.Officer{Name: name, Email: email, Role: role, Location: location}
	if err := officer.SetPassword("pw"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	if err := db.Create(&officer).Error; err != nil {
		t.Fatalf("failed to create officer: %v", err)
	}
	token, err := middleware.GenerateToken(officer.ID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return officer, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response object: %v", err)
	}
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var list []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response array: %v", err)
	}
	return list
}
