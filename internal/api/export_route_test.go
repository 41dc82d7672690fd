package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestExportCSVIncludesLoggedEntries(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "alice@example.com", "StrongPass1")
	submitMood(t, app, authCookie, "😊", "export me")

	response := testRequest(t, app, http.MethodGet, "/api/export/csv", authCookie, nil)
	requireStatus(t, response, http.StatusOK)
	defer response.Body.Close()

	if got := response.Header.Get("Content-Type"); !strings.Contains(got, "text/csv") {
		t.Fatalf("content type = %q, want text/csv", got)
	}
	if got := response.Header.Get("Content-Disposition"); !strings.Contains(got, "moodmates-export-") {
		t.Fatalf("content disposition = %q, want attachment filename", got)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	rendered := string(body)
	if !strings.HasPrefix(rendered, "Date,Mood,Color,Streak,Note") {
		t.Fatalf("csv missing header row: %q", rendered)
	}
	if !strings.Contains(rendered, "export me") {
		t.Fatalf("csv missing logged entry: %q", rendered)
	}
	if !strings.Contains(rendered, time.Now().UTC().Format("2006-01-02")) {
		t.Fatalf("csv missing entry date: %q", rendered)
	}
}

func TestExportJSONScopesToOwnEntries(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	aliceCookie := registerAndExtractAuthCookie(t, app, "alice@example.com", "StrongPass1")
	bobCookie := registerAndExtractAuthCookie(t, app, "bob@example.com", "StrongPass1")

	makeMutualFriends(t, app, aliceCookie, bobCookie, "bob@example.com")
	submitMood(t, app, aliceCookie, "😊", "alice entry")
	submitMood(t, app, bobCookie, "😢", "bob entry")

	response := testRequest(t, app, http.MethodGet, "/api/export/json", aliceCookie, nil)
	requireStatus(t, response, http.StatusOK)
	defer response.Body.Close()

	var payload struct {
		ExportedAt string `json:"exported_at"`
		Entries    []struct {
			Mood string `json:"mood"`
			Note string `json:"note"`
		} `json:"entries"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode export payload: %v", err)
	}

	if payload.ExportedAt == "" {
		t.Fatal("expected exported_at timestamp")
	}
	if len(payload.Entries) != 1 || payload.Entries[0].Note != "alice entry" {
		t.Fatalf("entries = %+v, want only alice's own entry", payload.Entries)
	}
}

func TestExportRejectsInvalidRange(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "alice@example.com", "StrongPass1")

	cases := []string{
		"/api/export/json?from=not-a-date",
		"/api/export/json?to=2024-99-99",
		"/api/export/csv?from=2024-03-31&to=2024-03-01",
	}
	for _, path := range cases {
		response := testRequest(t, app, http.MethodGet, path, authCookie, nil)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("GET %s status = %d, want 400", path, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestExportRequiresAuthentication(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	for _, path := range []string{"/api/export/csv", "/api/export/json"} {
		response := testRequest(t, app, http.MethodGet, path, "", nil)
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("GET %s status = %d, want 401", path, response.StatusCode)
		}
		response.Body.Close()
	}
}
