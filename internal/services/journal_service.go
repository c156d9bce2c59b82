package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/milohq/milo/internal/models"
	"github.com/milohq/milo/internal/sentiment"
)

var (
	ErrJournalContentRequired = errors.New("journal content must not be empty")
	ErrInvalidMood            = errors.New("invalid mood label")
	ErrJournalEntryNotFound   = errors.New("journal entry not found")
	ErrSentimentUnavailable   = errors.New("sentiment analysis unavailable")
)

type JournalEntryRepository interface {
	Create(entry *models.JournalEntry) error
	FindByID(entryID string) (models.JournalEntry, error)
	ListByUser(userID uint, limit int) ([]models.JournalEntry, error)
	DeleteByIDAndUser(entryID string, userID uint) error
	SaveAnalysis(entryID string, userID uint, score float64, riskLevel int) error
}

type JournalService struct {
	entries  JournalEntryRepository
	analyzer sentiment.Analyzer
	now      func() time.Time
}

func NewJournalService(entries JournalEntryRepository, analyzer sentiment.Analyzer) *JournalService {
	return &JournalService{
		entries:  entries,
		analyzer: analyzer,
		now:      time.Now,
	}
}

func (service *JournalService) CreateEntry(userID uint, content string, mood string) (models.JournalEntry, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return models.JournalEntry{}, ErrJournalContentRequired
	}
	if !models.IsValidMood(mood) {
		return models.JournalEntry{}, ErrInvalidMood
	}

	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   trimmed,
		Mood:      mood,
		CreatedAt: service.now(),
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.JournalEntry{}, fmt.Errorf("create journal entry: %w", err)
	}
	return entry, nil
}

func (service *JournalService) ListEntries(userID uint, limit int) ([]models.JournalEntry, error) {
	return service.entries.ListByUser(userID, limit)
}

func (service *JournalService) DeleteEntry(userID uint, entryID string) error {
	entry, err := service.entries.FindByID(entryID)
	if err != nil || entry.UserID != userID {
		return ErrJournalEntryNotFound
	}
	return service.entries.DeleteByIDAndUser(entryID, userID)
}

type JournalAnalysis struct {
	Entry     models.JournalEntry
	Score     float64
	RiskLevel int
}

// AnalyzeEntry scores an entry's sentiment and persists both the score and
// the derived risk level on the owning user. A failed upstream call leaves
// the entry untouched.
func (service *JournalService) AnalyzeEntry(ctx context.Context, userID uint, entryID string) (JournalAnalysis, error) {
	entry, err := service.entries.FindByID(entryID)
	if err != nil || entry.UserID != userID {
		return JournalAnalysis{}, ErrJournalEntryNotFound
	}

	score, err := service.analyzer.Score(ctx, entry.Content)
	if err != nil {
		return JournalAnalysis{}, fmt.Errorf("%w: %v", ErrSentimentUnavailable, err)
	}

	riskLevel := clampRiskLevel(RiskFromSentiment(score))
	if err := service.entries.SaveAnalysis(entryID, userID, score, riskLevel); err != nil {
		return JournalAnalysis{}, fmt.Errorf("persist journal analysis: %w", err)
	}

	entry.SentimentScore = &score
	return JournalAnalysis{Entry: entry, Score: score, RiskLevel: riskLevel}, nil
}
