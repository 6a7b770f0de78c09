package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
	"github.com/jwilson717/Expenser-AccountsService/internal/events"
	"github.com/jwilson717/Expenser-AccountsService/internal/models"
)

// AccountRepo is the persistence surface AccountService depends on.
type AccountRepo interface {
	FindByID(id int) (*models.Account, error)
	FindByUserID(userID int) ([]models.Account, error)
	Save(account *models.Account) (*models.Account, error)
	Update(account *models.Account) (*models.Account, error)
	Delete(id int) error
}

// AccountService carries the business logic for the accounts table:
// ownership enforcement and partial-update merging. Caller identity is
// resolved by the boundary layer and passed in explicitly; this service
// never touches tokens.
//
// There is no isolation between the load and save halves of Update/Delete:
// two concurrent writers to the same record can race and the last save wins.
type AccountService struct {
	repo      AccountRepo
	typeRepo  AccountTypeRepo
	publisher EventPublisher
}

func NewAccountService(repo AccountRepo, typeRepo AccountTypeRepo, publisher EventPublisher) *AccountService {
	return &AccountService{repo: repo, typeRepo: typeRepo, publisher: publisher}
}

// FindByUserID returns every account owned by userID. A user with no
// accounts gets an AccountNotFound, not an empty list.
func (s *AccountService) FindByUserID(userID int) ([]models.Account, error) {
	accounts, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperr.AccountNotFound("No accounts found")
	}
	return accounts, nil
}

// FindByID returns the account with the given id, provided user owns it.
func (s *AccountService) FindByID(id int, user *models.Identity) (*models.Account, error) {
	account, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if account.UserID != user.ID {
		return nil, apperr.UnauthorizedAccess("")
	}
	return account, nil
}

// Save persists a new account for user. The owner is always taken from the
// resolved identity; whatever the client put in userId is discarded. The
// referenced type must exist.
func (s *AccountService) Save(account models.Account, user *models.Identity) (*models.Account, error) {
	account.UserID = user.ID
	t, err := s.typeRepo.FindByID(account.Type.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.TypeNotFound("Type Does Not Exist")
		}
		return nil, err
	}
	account.Type = *t
	saved, err := s.repo.Save(&account)
	if err != nil {
		return nil, err
	}
	s.publish(events.AccountCreated, accountEvent(saved))
	return saved, nil
}

// Update merges accountData into the stored record and persists the result.
// Each field is merged independently:
//
//   - a non-zero type id is resolved and replaces the stored type;
//   - a non-empty description replaces the stored one;
//   - a non-zero balance replaces the stored one. Zero doubles as the
//     "absent" sentinel, so a request setting the balance to exactly 0 is
//     silently ignored (long-standing behavior, kept).
//
// The owner field in accountData is always ignored.
func (s *AccountService) Update(accountData models.Account, user *models.Identity) (*models.Account, error) {
	account, err := s.repo.FindByID(accountData.ID)
	if err != nil {
		return nil, err
	}
	if account.UserID != user.ID {
		return nil, apperr.UnauthorizedAccess("")
	}
	if accountData.Type.ID != 0 {
		t, err := s.typeRepo.FindByID(accountData.Type.ID)
		if err != nil {
			return nil, err
		}
		account.Type = *t
	}
	if accountData.Description != "" {
		account.Description = accountData.Description
	}
	if accountData.Balance != 0.0 {
		account.Balance = accountData.Balance
	}
	updated, err := s.repo.Update(account)
	if err != nil {
		return nil, err
	}
	s.publish(events.AccountUpdated, accountEvent(updated))
	return updated, nil
}

// Delete removes the account with the given id, provided user owns it.
func (s *AccountService) Delete(id int, user *models.Identity) error {
	account, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if account.UserID != user.ID {
		return apperr.UnauthorizedAccess("")
	}
	if err := s.repo.Delete(account.ID); err != nil {
		return err
	}
	s.publish(events.AccountDeleted, events.AccountDeletedEvent{
		AccountID: account.ID,
		UserID:    account.UserID,
	})
	return nil
}

func (s *AccountService) publish(eventType string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), events.AccountEventsStream, eventType, data); err != nil {
		slog.Error("failed to publish event", "type", eventType, "error", err)
	}
}

func accountEvent(a *models.Account) events.AccountEvent {
	return events.AccountEvent{
		AccountID: a.ID,
		UserID:    a.UserID,
		Type:      a.Type.Type,
		Balance:   a.Balance,
	}
}

func isNotFound(err error) bool {
	var appErr *apperr.Error
	return errors.As(err, &appErr) && appErr.Kind == apperr.KindNotFound
}
