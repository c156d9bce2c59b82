package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Conversations *ConversationRepository
	Journal       *JournalRepository
	Tasks         *TaskRepository
	Wellness      *WellnessRepository
	SOS           *SOSRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Conversations: NewConversationRepository(database),
		Journal:       NewJournalRepository(database),
		Tasks:         NewTaskRepository(database),
		Wellness:      NewWellnessRepository(database),
		SOS:           NewSOSRepository(database),
	}
}
