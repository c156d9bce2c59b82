package llm

import (
	"context"
	"errors"

	"github.com/milohq/milo/internal/models"
)

var (
	ErrEmptyReply  = errors.New("llm returned empty reply")
	ErrUnavailable = errors.New("llm unavailable")
)

// Client produces one completion from a system instruction and an ordered
// transcript. Implementations must not retry; callers treat any error as an
// aborted turn.
type Client interface {
	GenerateReply(ctx context.Context, systemPrompt string, history []models.ConversationTurn, userMessage string) (string, error)
}
