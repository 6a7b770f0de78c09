package service

import (
	"context"
	"log/slog"

	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
	"github.com/jwilson717/Expenser-AccountsService/internal/events"
	"github.com/jwilson717/Expenser-AccountsService/internal/models"
)

// AccountTypeRepo is the persistence surface AccountTypeService depends on.
type AccountTypeRepo interface {
	FindAll() ([]models.AccountType, error)
	FindByID(id int) (*models.AccountType, error)
	Save(t *models.AccountType) (*models.AccountType, error)
	Update(t *models.AccountType) (*models.AccountType, error)
	Delete(id int) error
}

// EventPublisher pushes lifecycle events to the event stream.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountTypeService carries the business logic for the account_type table.
type AccountTypeService struct {
	repo      AccountTypeRepo
	publisher EventPublisher
}

func NewAccountTypeService(repo AccountTypeRepo, publisher EventPublisher) *AccountTypeService {
	return &AccountTypeService{repo: repo, publisher: publisher}
}

// FindAll returns every type record; an empty list is a valid result.
func (s *AccountTypeService) FindAll() ([]models.AccountType, error) {
	return s.repo.FindAll()
}

func (s *AccountTypeService) FindByID(id int) (*models.AccountType, error) {
	return s.repo.FindByID(id)
}

// Save persists a new type. The type name must be non-empty; uniqueness is
// enforced by the store.
func (s *AccountTypeService) Save(t models.AccountType) (*models.AccountType, error) {
	if t.Type == "" {
		return nil, apperr.BadValue("Non-empty type value required")
	}
	saved, err := s.repo.Save(&t)
	if err != nil {
		return nil, err
	}
	s.publish(events.AccountTypeCreated, events.AccountTypeEvent{
		AccountTypeID: saved.ID,
		Type:          saved.Type,
	})
	return saved, nil
}

// Update merges typeData into the stored record: a non-empty name replaces
// the stored one, an empty name leaves it untouched.
func (s *AccountTypeService) Update(typeData models.AccountType) (*models.AccountType, error) {
	t, err := s.repo.FindByID(typeData.ID)
	if err != nil {
		return nil, err
	}
	if typeData.Type != "" {
		t.Type = typeData.Type
	}
	updated, err := s.repo.Update(t)
	if err != nil {
		return nil, err
	}
	s.publish(events.AccountTypeUpdated, events.AccountTypeEvent{
		AccountTypeID: updated.ID,
		Type:          updated.Type,
	})
	return updated, nil
}

// Delete removes a type record. Accounts still referencing the type are not
// checked here; the database constraint is the only guard.
func (s *AccountTypeService) Delete(id int) error {
	t, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(t.ID); err != nil {
		return err
	}
	s.publish(events.AccountTypeDeleted, events.AccountTypeEvent{
		AccountTypeID: t.ID,
		Type:          t.Type,
	})
	return nil
}

// publish is best-effort: a stream outage must not fail the request that
// already committed.
func (s *AccountTypeService) publish(eventType string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), events.AccountEventsStream, eventType, data); err != nil {
		slog.Error("failed to publish event", "type", eventType, "error", err)
	}
}
