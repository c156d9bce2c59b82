package api

import (
	"net/http"
	"testing"

	"github.com/milohq/milo/internal/models"
)

func TestProfileShowsRiskContext(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).Update("risk_level", 4).Error; err != nil {
		t.Fatalf("set risk level: %v", err)
	}
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	response := doRequest(t, app, http.MethodGet, "/api/profile", cookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := struct {
		RiskLabel   string `json:"riskLabel"`
		ShowSupport bool   `json:"showSupport"`
	}{}
	decodeJSONBody(t, response.Body, &payload)
	if payload.RiskLabel == "" {
		t.Fatal("expected a risk label")
	}
	if !payload.ShowSupport {
		t.Fatal("tier 4 must show the support banner")
	}
}

func TestProfileUpdateValidation(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	request := httpPutJSON(t, app, "/api/profile", cookie, map[string]any{
		"name": "Jordan99",
		"role": "student",
	})
	defer request.Body.Close()
	if request.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", request.StatusCode)
	}
}

func TestProfileUpdatePersists(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	response := httpPutJSON(t, app, "/api/profile", cookie, map[string]any{
		"name":                "Jordan Lee",
		"role":                "professional",
		"freeTime":            "18:00-20:00",
		"trustedContactName":  "Sam Rivera",
		"trustedContactPhone": "15551234567",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var refreshed models.User
	if err := database.First(&refreshed, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if refreshed.Name != "Jordan Lee" || refreshed.TrustedContactPhone != "15551234567" {
		t.Fatalf("unexpected persisted profile: %+v", refreshed)
	}
}

func TestDeleteAccountRemovesAllData(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	created := postJSON(t, app, "/api/journal", cookie, map[string]any{"content": "to be removed"})
	created.Body.Close()

	response := doRequest(t, app, http.MethodDelete, "/api/profile", cookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var users int64
	if err := database.Table("users").Count(&users).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 0 {
		t.Fatalf("expected no users after deletion, got %d", users)
	}

	var entries int64
	if err := database.Table("journal_entries").Count(&entries).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if entries != 0 {
		t.Fatalf("expected no journal entries after deletion, got %d", entries)
	}
}
