package models

import "time"

const (
	TurnKindOnboarding = "onboarding"
	TurnKindChat       = "chat"
)

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ConversationTurn is one line of an append-only transcript. Onboarding and
// companion chat share the table and are separated by Kind.
type ConversationTurn struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_conversation_turns_user_kind" json:"-"`
	Kind      string    `gorm:"not null;index:idx_conversation_turns_user_kind" json:"-"`
	Sender    string    `gorm:"not null" json:"sender"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
