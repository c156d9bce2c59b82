package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/milohq/milo/internal/models"
	"github.com/milohq/milo/internal/security"
)

var ErrNoTrustedContact = errors.New("no trusted contact on file")

const sosReferenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type SOSEventRepository interface {
	Create(event *models.SOSEvent) error
	ListByUser(userID uint) ([]models.SOSEvent, error)
}

type SOSUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

// SOSService records simulated check-in requests to the trusted contact. No
// SMS is sent; the event log is what the simulation produces.
type SOSService struct {
	events SOSEventRepository
	users  SOSUserRepository
	now    func() time.Time
}

func NewSOSService(events SOSEventRepository, users SOSUserRepository) *SOSService {
	return &SOSService{
		events: events,
		users:  users,
		now:    time.Now,
	}
}

func (service *SOSService) Trigger(userID uint) (models.SOSEvent, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.SOSEvent{}, fmt.Errorf("load user: %w", err)
	}
	if user.TrustedContactPhone == "" {
		return models.SOSEvent{}, ErrNoTrustedContact
	}

	referenceCode, err := security.RandomString(8, sosReferenceAlphabet)
	if err != nil {
		return models.SOSEvent{}, fmt.Errorf("generate reference code: %w", err)
	}

	event := models.SOSEvent{
		UserID:        userID,
		ReferenceCode: referenceCode,
		ContactPhone:  user.TrustedContactPhone,
		CreatedAt:     service.now(),
	}
	if err := service.events.Create(&event); err != nil {
		return models.SOSEvent{}, fmt.Errorf("persist sos event: %w", err)
	}
	return event, nil
}

func (service *SOSService) History(userID uint) ([]models.SOSEvent, error) {
	return service.events.ListByUser(userID)
}
