package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/change-password", handler.ChangePassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	onboarding := api.Group("/onboarding", handler.AuthRequired)
	onboarding.Get("/messages", handler.OnboardingHistory)
	onboarding.Post("/message", handler.OnboardingMessage)

	chat := api.Group("/chat", handler.AuthRequired)
	chat.Get("/messages", handler.ChatHistory)
	chat.Post("/message", handler.ChatMessage)

	journal := api.Group("/journal", handler.AuthRequired)
	journal.Get("", handler.ListJournalEntries)
	journal.Post("", handler.CreateJournalEntry)
	journal.Delete("/:id", handler.DeleteJournalEntry)
	journal.Post("/:id/analyze", handler.AnalyzeJournalEntry)

	assessment := api.Group("/assessment", handler.AuthRequired)
	assessment.Post("", handler.SubmitAssessment)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.GetDailyTasks)
	tasks.Post("/:taskKey/toggle", handler.ToggleDailyTask)

	wellness := api.Group("/wellness", handler.AuthRequired)
	wellness.Get("/plan", handler.GetWellnessPlan)
	wellness.Post("/analyze", handler.AnalyzeWellness)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)
	profile.Delete("", handler.DeleteAccount)

	sos := api.Group("/sos", handler.AuthRequired)
	sos.Post("", handler.TriggerSOS)
	sos.Get("", handler.SOSHistory)
}
