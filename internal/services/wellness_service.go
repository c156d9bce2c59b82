package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/milohq/milo/internal/llm"
	"github.com/milohq/milo/internal/models"
)

var ErrAnalysisUnparseable = errors.New("wellness analysis unparseable")

// wellnessJournalWindow and wellnessChatWindow bound how much history feeds
// one analysis run.
const (
	wellnessJournalWindow = 10
	wellnessChatWindow    = 20
)

type WellnessJournalRepository interface {
	ListByUser(userID uint, limit int) ([]models.JournalEntry, error)
}

type WellnessConversationRepository interface {
	ListByUserAndKind(userID uint, kind string) ([]models.ConversationTurn, error)
}

type WellnessPlanRepository interface {
	Create(plan *models.WellnessPlan) error
	LatestByUser(userID uint) (models.WellnessPlan, bool, error)
}

type WellnessUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

type DailyTaskPlanner interface {
	RegenerateFromPlan(userID uint, day time.Time, location *time.Location, activities []string) error
}

// WellnessService recomputes the four sub-scores wholesale on every analysis
// run; there is no incremental update.
type WellnessService struct {
	users         WellnessUserRepository
	journal       WellnessJournalRepository
	conversations WellnessConversationRepository
	plans         WellnessPlanRepository
	taskPlanner   DailyTaskPlanner
	assistant     llm.Client
	now           func() time.Time
}

func NewWellnessService(
	users WellnessUserRepository,
	journal WellnessJournalRepository,
	conversations WellnessConversationRepository,
	plans WellnessPlanRepository,
	taskPlanner DailyTaskPlanner,
	assistant llm.Client,
) *WellnessService {
	return &WellnessService{
		users:         users,
		journal:       journal,
		conversations: conversations,
		plans:         plans,
		taskPlanner:   taskPlanner,
		assistant:     assistant,
		now:           time.Now,
	}
}

func (service *WellnessService) LatestPlan(userID uint) (models.WellnessPlan, bool, error) {
	return service.plans.LatestByUser(userID)
}

// Analyze asks the model to score recent journal and chat material, derives
// the overall score and referral flag, persists a new plan, and regenerates
// today's tasks from the plan's activities.
func (service *WellnessService) Analyze(ctx context.Context, userID uint, location *time.Location) (models.WellnessPlan, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.WellnessPlan{}, fmt.Errorf("load user: %w", err)
	}

	journalLines, err := service.journalLines(userID)
	if err != nil {
		return models.WellnessPlan{}, err
	}
	chatLines, err := service.chatLines(userID)
	if err != nil {
		return models.WellnessPlan{}, err
	}

	prompt := llm.BuildWellnessAnalysisPrompt(journalLines, chatLines)
	raw, err := service.assistant.GenerateReply(ctx, prompt, nil, "Analyze the data above and reply with the JSON object only.")
	if err != nil {
		return models.WellnessPlan{}, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	scores, err := parseWellnessAnalysis(raw)
	if err != nil {
		return models.WellnessPlan{}, err
	}

	mood := ClampWellnessScore(scores.MoodScore)
	anxiety := ClampWellnessScore(scores.AnxietyScore)
	stress := ClampWellnessScore(scores.StressScore)
	social := ClampWellnessScore(scores.SocialEngagementScore)
	overall := OverallWellnessScore(mood, anxiety, stress, social)

	plan := models.WellnessPlan{
		UserID:            userID,
		MoodScore:         mood,
		AnxietyScore:      anxiety,
		StressScore:       stress,
		SocialScore:       social,
		OverallScore:      overall,
		RecommendReferral: ShouldRecommendReferral(user.RiskLevel, mood, anxiety, stress, overall),
		Activities:        scores.RecommendedActivities,
		CreatedAt:         service.now(),
	}
	if err := service.plans.Create(&plan); err != nil {
		return models.WellnessPlan{}, fmt.Errorf("persist wellness plan: %w", err)
	}

	// The plan commits before task regeneration. Tasks are derived state:
	// when regeneration fails the error surfaces to the caller, and the next
	// task read rebuilds the day's list from this plan.
	if err := service.taskPlanner.RegenerateFromPlan(userID, service.now(), location, plan.Activities); err != nil {
		return models.WellnessPlan{}, err
	}

	return plan, nil
}

func (service *WellnessService) journalLines(userID uint) ([]string, error) {
	entries, err := service.journal.ListByUser(userID, wellnessJournalWindow)
	if err != nil {
		return nil, fmt.Errorf("load journal entries: %w", err)
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		line := entry.Content
		if entry.Mood != "" {
			line = fmt.Sprintf("(mood: %s) %s", entry.Mood, entry.Content)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (service *WellnessService) chatLines(userID uint) ([]string, error) {
	turns, err := service.conversations.ListByUserAndKind(userID, models.TurnKindChat)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	if len(turns) > wellnessChatWindow {
		turns = turns[len(turns)-wellnessChatWindow:]
	}
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Sender, turn.Text))
	}
	return lines, nil
}

type wellnessAnalysisPayload struct {
	MoodScore             float64  `json:"moodScore"`
	AnxietyScore          float64  `json:"anxietyScore"`
	StressScore           float64  `json:"stressScore"`
	SocialEngagementScore float64  `json:"socialEngagementScore"`
	RecommendedActivities []string `json:"recommendedActivities"`
}

// parseWellnessAnalysis extracts the JSON object from a model reply,
// tolerating code fences and surrounding prose.
func parseWellnessAnalysis(raw string) (wellnessAnalysisPayload, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return wellnessAnalysisPayload{}, fmt.Errorf("%w: no JSON object in reply", ErrAnalysisUnparseable)
	}

	var payload wellnessAnalysisPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return wellnessAnalysisPayload{}, fmt.Errorf("%w: %v", ErrAnalysisUnparseable, err)
	}
	return payload, nil
}
