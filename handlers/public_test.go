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

func TestPublicResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPublicHandler(db, testutil.GetTestConfig())
	consented := testutil.CreateTestResult(t, db, nil, "Spring Art", "https://cdn.test/works/a.png", true)
	noWork := testutil.CreateTestResult(t, db, nil, "Spring Art", "", true)
	testutil.CreateTestResult(t, db, nil, "Spring Art", "https://cdn.test/works/b.png", false)

	w := httptest.NewRecorder()
	handler.PublicResults(w, testutil.MakeRequest("GET", "/public-results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.PublicResult
	testutil.AssertJSON(t, w, &results)

	// Public results only need consent; the work file is optional
	if len(results) != 2 {
		t.Fatalf("Expected 2 consented results, got %d", len(results))
	}
	ids := map[int64]bool{results[0].ID: true, results[1].ID: true}
	if !ids[consented] || !ids[noWork] {
		t.Errorf("Expected results %d and %d, got %+v", consented, noWork, results)
	}
	for _, res := range results {
		if res.ContestName == nil || *res.ContestName != "Spring Art" {
			t.Errorf("Unexpected contest_name in %+v", res)
		}
	}
}

func TestGalleryWorks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPublicHandler(db, testutil.GetTestConfig())
	shown := testutil.CreateTestResult(t, db, nil, "Spring Art", "https://cdn.test/works/a.png", true)
	testutil.CreateTestResult(t, db, nil, "Spring Art", "", true)
	testutil.CreateTestResult(t, db, nil, "Spring Art", "https://cdn.test/works/b.png", false)

	// Empty string is not a work reference either
	if _, err := db.Exec(`INSERT INTO results (full_name, work_file_url, gallery_consent) VALUES ('Blank', '', true)`); err != nil {
		t.Fatalf("Failed to insert blank result: %v", err)
	}

	w := httptest.NewRecorder()
	handler.GalleryWorks(w, testutil.MakeRequest("GET", "/gallery-works", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var works []models.GalleryWork
	testutil.AssertJSON(t, w, &works)

	if len(works) != 1 {
		t.Fatalf("Expected 1 gallery work, got %d", len(works))
	}
	if works[0].ID != shown || works[0].WorkFileURL != "https://cdn.test/works/a.png" {
		t.Errorf("Unexpected gallery work %+v", works[0])
	}
}

func TestPublicViewsEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPublicHandler(db, testutil.GetTestConfig())

	for name, fn := range map[string]http.HandlerFunc{
		"public-results": handler.PublicResults,
		"gallery-works":  handler.GalleryWorks,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			fn(w, testutil.MakeRequest("GET", "/"+name, nil, nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			if body := w.Body.String(); body != "[]\n" {
				t.Errorf("Expected empty JSON array, got %q", body)
			}
		})
	}
}
