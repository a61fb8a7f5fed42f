package controllers_test

import (
	"net/http"
	"testing"

	"challan_tracker/internal/models"
)

func TestVehicleCreateAndLookup(t *testing.T) {
	r, db := setupTestRouter(t)
	_, token := createOfficer(t, db, "O1", "o1@x.com", models.RoleOfficer, "Delhi")

	w := doJSON(t, r, "POST", "/vehicles", token, map[string]any{
		"vehicle_no": "DL-3-4567", "owner_name": "R. Gupta", "owner_contact": "9999999999",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create vehicle: got %d, want 201 (%s)", w.Code, w.Body.String())
	}

	// Public lookup needs no token
	w = doJSON(t, r, "GET", "/vehicles/DL-3-4567", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("lookup: got %d, want 200", w.Code)
	}
	vehicle := decodeMap(t, w)
	if vehicle["owner_name"] != "R. Gupta" {
		t.Errorf("owner = %v, want R. Gupta", vehicle["owner_name"])
	}

	if w := doJSON(t, r, "GET", "/vehicles/XX-0-0000", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown vehicle: got %d, want 404", w.Code)
	}
}

func TestVehicleDuplicateNumber(t *testing.T) {
	r, db := setupTestRouter(t)
	_, token := createOfficer(t, db, "O1", "o1@x.com", models.RoleOfficer, "Delhi")

	payload := map[string]any{"vehicle_no": "DL-1", "owner_name": "A"}
	if w := doJSON(t, r, "POST", "/vehicles", token, payload); w.Code != http.StatusCreated {
		t.Fatalf("create: got %d, want 201", w.Code)
	}
	if w := doJSON(t, r, "POST", "/vehicles", token, payload); w.Code != http.StatusBadRequest {
		t.Errorf("duplicate vehicle: got %d, want 400", w.Code)
	}
}

func TestVehicleListRequiresAuth(t *testing.T) {
	r, _ := setupTestRouter(t)

	if w := doJSON(t, r, "GET", "/vehicles", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("list without token: got %d, want 401", w.Code)
	}
}
