// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/talent-studio/models"
	"github.com/danielhkuo/talent-studio/testutil"
)

func listApplications(t *testing.T, handler http.Handler, query string) []models.Application {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("GET", "/applications"+query, nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var apps []models.Application
	testutil.AssertJSON(t, w, &apps)
	return apps
}

func findApplication(apps []models.Application, id int64) *models.Application {
	for i := range apps {
		if apps[i].ID == id {
			return &apps[i]
		}
	}
	return nil
}

func TestSoftDeleteAndRestore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewApplicationHandler(db, testutil.GetTestConfig())
	id := testutil.CreateTestApplication(t, db, "Kolya", models.StatusNew)
	other := testutil.CreateTestApplication(t, db, "Sasha", models.StatusNew)

	// Soft delete
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("DELETE", "/applications?id="+itoa(id), nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	active := listApplications(t, handler, "")
	if findApplication(active, id) != nil {
		t.Error("Soft-deleted application still in active view")
	}
	if findApplication(active, other) == nil {
		t.Error("Untouched application missing from active view")
	}

	deleted := listApplications(t, handler, "?deleted=true")
	if len(deleted) != 1 || deleted[0].ID != id {
		t.Fatalf("Expected only %d in deleted view, got %+v", id, deleted)
	}
	if deleted[0].DeletedAt == nil {
		t.Error("Expected deleted_at to be set")
	}

	// Restore
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("DELETE", "/applications?id="+itoa(id)+"&restore=true", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	restored := findApplication(listApplications(t, handler, ""), id)
	if restored == nil {
		t.Fatal("Restored application missing from active view")
	}
	if restored.DeletedAt != nil {
		t.Errorf("Expected deleted_at to be null, got %v", restored.DeletedAt)
	}
	if restored.UpdatedAt == nil {
		t.Error("Expected restore to stamp updated_at")
	}

	if len(listApplications(t, handler, "?deleted=true")) != 0 {
		t.Error("Expected empty deleted view after restore")
	}
}

func TestDeleteApplicationUnknownID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewApplicationHandler(db, testutil.GetTestConfig())

	for _, query := range []string{"?id=424242", "?id=424242&restore=true"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, testutil.MakeRequest("DELETE", "/applications"+query, nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}
}

func TestApplicationsWithoutSoftDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.SoftDelete = false
	handler := NewApplicationHandler(db, cfg)

	id := testutil.CreateTestApplication(t, db, "Olya", models.StatusNew)
	// A stamp written out of band is never exposed
	if _, err := db.Exec("UPDATE applications SET deleted_at = NOW() WHERE id = $1", id); err != nil {
		t.Fatalf("Failed to stamp deleted_at: %v", err)
	}

	apps := listApplications(t, handler, "?deleted=true")
	app := findApplication(apps, id)
	if app == nil {
		t.Fatal("Expected every row to be listed")
	}
	if app.DeletedAt != nil {
		t.Error("Expected constant null deleted_at")
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("DELETE", "/applications?id="+itoa(id), nil, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUpdateApplication(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewApplicationHandler(db, testutil.GetTestConfig())
	id := testutil.CreateTestApplication(t, db, "Petya", models.StatusNew)

	tests := []struct {
		name           string
		body           models.UpdateApplicationRequest
		expectedStatus int
	}{
		{
			name:           "missing id",
			body:           models.UpdateApplicationRequest{FullName: strPtr("x")},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "full replace",
			body: models.UpdateApplicationRequest{
				ID:          id,
				FullName:    strPtr("Pyotr"),
				Age:         intPtr(11),
				Teacher:     strPtr("Olga"),
				Institution: strPtr("Art School 3"),
				WorkTitle:   strPtr("Summer"),
				Email:       strPtr("p@example.com"),
				Status:      strPtr("reviewed"),
				Result:      strPtr("laureate"),
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, testutil.MakeRequest("PUT", "/applications", tt.body, nil))
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	app := findApplication(listApplications(t, handler, ""), id)
	if app == nil {
		t.Fatal("Updated application missing")
	}
	if app.FullName != "Pyotr" || *app.Age != 11 || app.Status != "reviewed" || *app.Result != "laureate" {
		t.Errorf("Update not applied: %+v", app)
	}
	if app.UpdatedAt == nil {
		t.Error("Expected updated_at to be stamped")
	}
}
