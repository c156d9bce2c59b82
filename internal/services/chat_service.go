package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/milohq/milo/internal/llm"
	"github.com/milohq/milo/internal/models"
)

// ChatGreeting opens a fresh companion conversation.
const ChatGreeting = "Hi there! I'm Milo, your AI companion. I'm here to listen and support you. How are you feeling today? 💙"

// chatHistoryWindow bounds how many prior turns are replayed to the model.
const chatHistoryWindow = 20

type ChatConversationRepository interface {
	ListByUserAndKind(userID uint, kind string) ([]models.ConversationTurn, error)
	Create(turn *models.ConversationTurn) error
	AppendExchange(userTurn *models.ConversationTurn, aiTurn *models.ConversationTurn, userUpdates map[string]any) error
}

type ChatService struct {
	conversations ChatConversationRepository
	assistant     llm.Client
	now           func() time.Time
}

func NewChatService(conversations ChatConversationRepository, assistant llm.Client) *ChatService {
	return &ChatService{
		conversations: conversations,
		assistant:     assistant,
		now:           time.Now,
	}
}

// SendMessage appends one user/AI exchange to the companion transcript. An
// upstream failure aborts the turn with nothing persisted.
func (service *ChatService) SendMessage(ctx context.Context, userID uint, text string) (models.ConversationTurn, error) {
	message := strings.TrimSpace(text)
	if message == "" {
		return models.ConversationTurn{}, ErrEmptyMessage
	}

	history, err := service.History(userID)
	if err != nil {
		return models.ConversationTurn{}, fmt.Errorf("load chat history: %w", err)
	}
	if len(history) > chatHistoryWindow {
		history = history[len(history)-chatHistoryWindow:]
	}

	reply, err := service.assistant.GenerateReply(ctx, llm.CompanionSystemPrompt, history, message)
	if err != nil {
		return models.ConversationTurn{}, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	sentAt := service.now()
	userTurn := models.ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      models.TurnKindChat,
		Sender:    models.SenderUser,
		Text:      message,
		CreatedAt: sentAt,
	}
	aiTurn := models.ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      models.TurnKindChat,
		Sender:    models.SenderAI,
		Text:      reply,
		CreatedAt: sentAt.Add(time.Millisecond),
	}

	if err := service.conversations.AppendExchange(&userTurn, &aiTurn, nil); err != nil {
		return models.ConversationTurn{}, fmt.Errorf("persist chat exchange: %w", err)
	}

	return aiTurn, nil
}

// History returns the ordered companion transcript, seeding a fresh
// conversation with the greeting.
func (service *ChatService) History(userID uint) ([]models.ConversationTurn, error) {
	history, err := service.conversations.ListByUserAndKind(userID, models.TurnKindChat)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		return history, nil
	}

	greeting := models.ConversationTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      models.TurnKindChat,
		Sender:    models.SenderAI,
		Text:      ChatGreeting,
		CreatedAt: service.now(),
	}
	if err := service.conversations.Create(&greeting); err != nil {
		return nil, fmt.Errorf("seed chat greeting: %w", err)
	}
	return []models.ConversationTurn{greeting}, nil
}
