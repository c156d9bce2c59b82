package llm

import (
	"context"

	"github.com/milohq/milo/internal/models"
)

// ScriptedClient returns canned replies in order and records what it was
// asked. It backs tests and local development without an API key.
type ScriptedClient struct {
	Replies []string
	Err     error

	Calls       int
	LastSystem  string
	LastMessage string
	LastHistory []models.ConversationTurn
}

func (s *ScriptedClient) GenerateReply(_ context.Context, systemPrompt string, history []models.ConversationTurn, userMessage string) (string, error) {
	s.Calls++
	s.LastSystem = systemPrompt
	s.LastMessage = userMessage
	s.LastHistory = append([]models.ConversationTurn(nil), history...)

	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Replies) == 0 {
		return "", ErrEmptyReply
	}

	reply := s.Replies[0]
	if len(s.Replies) > 1 {
		s.Replies = s.Replies[1:]
	}
	return reply, nil
}
