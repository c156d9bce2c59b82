package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/milohq/milo/internal/llm"
	"github.com/milohq/milo/internal/models"
)

var (
	ErrOnboardingComplete     = errors.New("onboarding already complete")
	ErrEmptyMessage           = errors.New("message must not be empty")
	ErrAssistantUnavailable   = errors.New("assistant unavailable")
	ErrOnboardingUserNotFound = errors.New("onboarding user not found")
)

type OnboardingUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

type OnboardingConversationRepository interface {
	ListByUserAndKind(userID uint, kind string) ([]models.ConversationTurn, error)
	Create(turn *models.ConversationTurn) error
	AppendExchange(userTurn *models.ConversationTurn, aiTurn *models.ConversationTurn, userUpdates map[string]any) error
}

// OnboardingService drives the multi-turn onboarding dialogue: the full
// transcript is replayed to the model each round trip, the reply becomes the
// next AI turn, and completion is detected from the reply text.
type OnboardingService struct {
	users         OnboardingUserRepository
	conversations OnboardingConversationRepository
	assistant     llm.Client
	now           func() time.Time
}

func NewOnboardingService(users OnboardingUserRepository, conversations OnboardingConversationRepository, assistant llm.Client) *OnboardingService {
	return &OnboardingService{
		users:         users,
		conversations: conversations,
		assistant:     assistant,
		now:           time.Now,
	}
}

type OnboardingReply struct {
	Question   string
	IsComplete bool
}

// SubmitMessage runs one onboarding round trip. A session already marked
// complete is rejected with no state change, and an upstream failure aborts
// the turn before anything is persisted.
func (service *OnboardingService) SubmitMessage(ctx context.Context, userID uint, text string) (OnboardingReply, error) {
	message := strings.TrimSpace(text)
	if message == "" {
		return OnboardingReply{}, ErrEmptyMessage
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return OnboardingReply{}, ErrOnboardingUserNotFound
	}
	if user.OnboardingComplete {
		return OnboardingReply{}, ErrOnboardingComplete
	}

	history, err := service.History(userID)
	if err != nil {
		return OnboardingReply{}, fmt.Errorf("load onboarding history: %w", err)
	}

	reply, err := service.assistant.GenerateReply(ctx, llm.OnboardingSystemPrompt, history, message)
	if err != nil {
		return OnboardingReply{}, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	isComplete := IsPlanReadyReply(reply)

	userUpdates := map[string]any{}
	if IsNameCaptureTurn(len(history)) {
		if name := SanitizeCapturedName(message); name != "" {
			userUpdates["name"] = name
		}
	}
	if isComplete {
		userUpdates["onboarding_complete"] = true
	}

	submittedAt := service.now()
	userTurn := models.ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      models.TurnKindOnboarding,
		Sender:    models.SenderUser,
		Text:      message,
		CreatedAt: submittedAt,
	}
	aiTurn := models.ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      models.TurnKindOnboarding,
		Sender:    models.SenderAI,
		Text:      reply,
		CreatedAt: submittedAt.Add(time.Millisecond),
	}

	if err := service.conversations.AppendExchange(&userTurn, &aiTurn, userUpdates); err != nil {
		return OnboardingReply{}, fmt.Errorf("persist onboarding exchange: %w", err)
	}

	return OnboardingReply{Question: reply, IsComplete: isComplete}, nil
}

// History returns the ordered onboarding transcript, seeding a fresh session
// with the greeting turn.
func (service *OnboardingService) History(userID uint) ([]models.ConversationTurn, error) {
	history, err := service.conversations.ListByUserAndKind(userID, models.TurnKindOnboarding)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		return history, nil
	}

	greeting := models.ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      models.TurnKindOnboarding,
		Sender:    models.SenderAI,
		Text:      OnboardingGreeting,
		CreatedAt: service.now(),
	}
	if err := service.conversations.Create(&greeting); err != nil {
		return nil, fmt.Errorf("seed onboarding greeting: %w", err)
	}
	return []models.ConversationTurn{greeting}, nil
}
