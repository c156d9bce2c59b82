package api

import (
	"github.com/milohq/milo/internal/db"
	"github.com/milohq/milo/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.onboardingService = services.NewOnboardingService(handler.repositories.Users, handler.repositories.Conversations, handler.assistant)
	handler.chatService = services.NewChatService(handler.repositories.Conversations, handler.assistant)
	handler.journalService = services.NewJournalService(handler.repositories.Journal, handler.analyzer)
	handler.taskService = services.NewTaskService(handler.repositories.Tasks, handler.repositories.Users, handler.repositories.Wellness)
	handler.wellnessService = services.NewWellnessService(
		handler.repositories.Users,
		handler.repositories.Journal,
		handler.repositories.Conversations,
		handler.repositories.Wellness,
		handler.taskService,
		handler.assistant,
	)
	handler.profileService = services.NewProfileService(handler.repositories.Users)
	handler.sosService = services.NewSOSService(handler.repositories.SOS, handler.repositories.Users)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
