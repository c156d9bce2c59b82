package api

import (
	"net/http"
	"testing"

	"github.com/milohq/milo/internal/models"
)

func TestSOSRecordsEventForTrustedContact(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).Update("trusted_contact_phone", "15551234567").Error; err != nil {
		t.Fatalf("set trusted contact: %v", err)
	}
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	response := postJSON(t, app, "/api/sos", cookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	var event models.SOSEvent
	decodeJSONBody(t, response.Body, &event)
	if len(event.ReferenceCode) != 8 {
		t.Fatalf("expected 8-character reference code, got %q", event.ReferenceCode)
	}
	if event.ContactPhone != "15551234567" {
		t.Fatalf("unexpected contact phone: %q", event.ContactPhone)
	}

	history := doRequest(t, app, http.MethodGet, "/api/sos", cookie, nil)
	defer history.Body.Close()
	historyPayload := struct {
		Events []models.SOSEvent `json:"events"`
	}{}
	decodeJSONBody(t, history.Body, &historyPayload)
	if len(historyPayload.Events) != 1 {
		t.Fatalf("expected one recorded event, got %d", len(historyPayload.Events))
	}
}

func TestSOSRequiresTrustedContact(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	response := postJSON(t, app, "/api/sos", cookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Table("sos_events").Count(&count).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 0 {
		t.Fatalf("a rejected trigger must not persist an event, got %d", count)
	}
}
