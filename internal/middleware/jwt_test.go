package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"challan_tracker/internal/models"
)

func openTestStore(t *testing.T) *gorm.DB {
	t.Helper()
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

	if err := db.AutoMigrate(&models.Officer{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return db
}

func seedOfficer(t *testing.T, db *gorm.DB, role models.Role) models.Officer {
	t.Helper()
	officer := models.Officer{Name: "Test Officer", Email: string(role) + "@example.com", Role: role}
	if err := officer.SetPassword("pw"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	if err := db.Create(&officer).Error; err != nil {
		t.Fatalf("seed officer failed: %v", err)
	}
	return officer
}

func authTestEngine(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": CurrentOfficer(c).Name})
	})
	r.GET("/admin-only", RequireAuth(db), AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/officer-only", RequireAuth(db), OfficerOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	id, err := parseToken(token)
	if err != nil {
		t.Fatalf("parseToken rejected a fresh token: %v", err)
	}
	if id != 42 {
		t.Errorf("embedded id = %d, want 42", id)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := parseToken(token + "x"); err == nil {
		t.Error("expected a tampered token to be rejected")
	}
	if _, err := parseToken("not.a.token"); err == nil {
		t.Error("expected garbage to be rejected")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	claims := jwt.MapClaims{
		"id":  uint(1),
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := parseToken(expired); err == nil {
		t.Error("expected an expired token to be rejected")
	}
}

func TestRequireAuthStates(t *testing.T) {
	db := openTestStore(t)
	r := authTestEngine(t, db)
	officer := seedOfficer(t, db, models.RoleOfficer)

	// No Authorization header
	if w := get(r, "/protected", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: got %d, want 401", w.Code)
	}

	// Malformed header scheme
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad scheme: got %d, want 401", w.Code)
	}

	// Invalid token
	if w := get(r, "/protected", "bogus"); w.Code != http.StatusUnauthorized {
		t.Errorf("invalid token: got %d, want 401", w.Code)
	}

	// Valid token whose id no longer resolves
	ghost, err := GenerateToken(officer.ID + 1000)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if w := get(r, "/protected", ghost); w.Code != http.StatusUnauthorized {
		t.Errorf("unknown identity: got %d, want 401", w.Code)
	}

	// Happy path attaches the officer
	token, err := GenerateToken(officer.ID)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w = get(r, "/protected", token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: got %d, want 200 (%s)", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["name"] != officer.Name {
		t.Errorf("attached officer name = %v, want %q", body["name"], officer.Name)
	}
}

func TestRoleGatesExactMatch(t *testing.T) {
	db := openTestStore(t)
	r := authTestEngine(t, db)

	officer := seedOfficer(t, db, models.RoleOfficer)
	admin := seedOfficer(t, db, models.RoleAdmin)

	officerToken, _ := GenerateToken(officer.ID)
	adminToken, _ := GenerateToken(admin.ID)

	if w := get(r, "/admin-only", officerToken); w.Code != http.StatusForbidden {
		t.Errorf("officer on admin route: got %d, want 403", w.Code)
	}
	if w := get(r, "/admin-only", adminToken); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: got %d, want 200", w.Code)
	}

	// No hierarchy: admin is not implicitly an officer
	if w := get(r, "/officer-only", adminToken); w.Code != http.StatusForbidden {
		t.Errorf("admin on officer route: got %d, want 403", w.Code)
	}
	if w := get(r, "/officer-only", officerToken); w.Code != http.StatusOK {
		t.Errorf("officer on officer route: got %d, want 200", w.Code)
	}
}
