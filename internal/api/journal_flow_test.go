package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/milohq/milo/internal/llm"
	"github.com/milohq/milo/internal/models"
	"github.com/milohq/milo/internal/sentiment"
)

func TestJournalCreateAndList(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	created := postJSON(t, app, "/api/journal", cookie, map[string]any{
		"content": "Slept well and took a long walk.",
		"mood":    "happy",
	})
	defer created.Body.Close()
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", created.StatusCode)
	}

	listed := doRequest(t, app, http.MethodGet, "/api/journal", cookie, nil)
	defer listed.Body.Close()
	payload := struct {
		Entries []models.JournalEntry `json:"entries"`
	}{}
	decodeJSONBody(t, listed.Body, &payload)
	if len(payload.Entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(payload.Entries))
	}
	if payload.Entries[0].Mood != models.MoodHappy {
		t.Fatalf("unexpected mood: %q", payload.Entries[0].Mood)
	}
}

func TestJournalCreateValidation(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	empty := postJSON(t, app, "/api/journal", cookie, map[string]any{"content": "   "})
	defer empty.Body.Close()
	if empty.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty content, got %d", empty.StatusCode)
	}

	badMood := postJSON(t, app, "/api/journal", cookie, map[string]any{"content": "fine", "mood": "ecstatic"})
	defer badMood.Body.Close()
	if badMood.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown mood, got %d", badMood.StatusCode)
	}
}

func TestJournalAnalyzePersistsScoreAndRiskLevel(t *testing.T) {
	analyzer := &sentiment.FixedAnalyzer{Value: -0.8}
	app, database := newTestAppWithClients(t, &llm.ScriptedClient{}, analyzer)
	user := createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	created := postJSON(t, app, "/api/journal", cookie, map[string]any{"content": "everything feels hopeless"})
	defer created.Body.Close()
	var entry models.JournalEntry
	decodeJSONBody(t, created.Body, &entry)

	analyzed := postJSON(t, app, fmt.Sprintf("/api/journal/%s/analyze", entry.ID), cookie, nil)
	defer analyzed.Body.Close()
	if analyzed.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", analyzed.StatusCode)
	}
	analysisPayload := struct {
		Score     float64 `json:"score"`
		RiskLevel int     `json:"riskLevel"`
	}{}
	decodeJSONBody(t, analyzed.Body, &analysisPayload)
	if analysisPayload.Score != -0.8 || analysisPayload.RiskLevel != 5 {
		t.Fatalf("unexpected analysis payload: %+v", analysisPayload)
	}

	var refreshed models.User
	if err := database.First(&refreshed, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if refreshed.RiskLevel != 5 {
		t.Fatalf("expected persisted risk level 5, got %d", refreshed.RiskLevel)
	}

	var stored models.JournalEntry
	if err := database.First(&stored, "id = ?", entry.ID).Error; err != nil {
		t.Fatalf("reload entry: %v", err)
	}
	if stored.SentimentScore == nil || *stored.SentimentScore != -0.8 {
		t.Fatal("expected persisted sentiment score on the entry")
	}
}

func TestJournalAnalyzeUpstreamFailure(t *testing.T) {
	analyzer := &sentiment.FixedAnalyzer{Err: fmt.Errorf("deadline exceeded")}
	app, database := newTestAppWithClients(t, &llm.ScriptedClient{}, analyzer)
	user := createTestUser(t, database, "user@example.com", "Sunrise42x", true)
	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "Sunrise42x")

	created := postJSON(t, app, "/api/journal", cookie, map[string]any{"content": "a rough day"})
	defer created.Body.Close()
	var entry models.JournalEntry
	decodeJSONBody(t, created.Body, &entry)

	analyzed := postJSON(t, app, fmt.Sprintf("/api/journal/%s/analyze", entry.ID), cookie, nil)
	defer analyzed.Body.Close()
	if analyzed.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", analyzed.StatusCode)
	}

	var refreshed models.User
	if err := database.First(&refreshed, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if refreshed.RiskLevel != models.DefaultRiskLevel {
		t.Fatalf("a failed analysis must not change the risk level, got %d", refreshed.RiskLevel)
	}
}

func TestJournalDeleteEnforcesOwnership(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "owner@example.com", "Sunrise42x", true)
	createTestUser(t, database, "other@example.com", "Sunrise42x", true)
	ownerCookie := loginAndExtractAuthCookie(t, app, "owner@example.com", "Sunrise42x")
	otherCookie := loginAndExtractAuthCookie(t, app, "other@example.com", "Sunrise42x")

	created := postJSON(t, app, "/api/journal", ownerCookie, map[string]any{"content": "mine"})
	defer created.Body.Close()
	var entry models.JournalEntry
	decodeJSONBody(t, created.Body, &entry)

	foreign := doRequest(t, app, http.MethodDelete, "/api/journal/"+entry.ID, otherCookie, nil)
	defer foreign.Body.Close()
	if foreign.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign delete, got %d", foreign.StatusCode)
	}

	owned := doRequest(t, app, http.MethodDelete, "/api/journal/"+entry.ID, ownerCookie, nil)
	defer owned.Body.Close()
	if owned.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", owned.StatusCode)
	}
}
