package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/milohq/milo/internal/db"
	"github.com/milohq/milo/internal/llm"
	"github.com/milohq/milo/internal/sentiment"
	"github.com/milohq/milo/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	assistant    llm.Client
	analyzer     sentiment.Analyzer

	repositories      *db.Repositories
	authService       *services.AuthService
	onboardingService *services.OnboardingService
	chatService       *services.ChatService
	journalService    *services.JournalService
	taskService       *services.TaskService
	wellnessService   *services.WellnessService
	profileService    *services.ProfileService
	sosService        *services.SOSService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, assistant llm.Client, analyzer sentiment.Analyzer, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		assistant:    assistant,
		analyzer:     analyzer,
	}
	return handler.withDependencies(database)
}
