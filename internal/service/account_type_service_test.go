package service

import (
	"testing"

	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
	"github.com/jwilson717/Expenser-AccountsService/internal/models"
)

func TestFindAllTypes(t *testing.T) {
	repo := &mockTypeRepo{
		findAllFn: func() ([]models.AccountType, error) {
			return []models.AccountType{checking, savings}, nil
		},
	}
	svc := NewAccountTypeService(repo, nil)

	types, err := svc.FindAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 2 {
		t.Errorf("expected 2 types, got %d", len(types))
	}
}

func TestFindAllTypesEmpty(t *testing.T) {
	repo := &mockTypeRepo{
		findAllFn: func() ([]models.AccountType, error) { return nil, nil },
	}
	svc := NewAccountTypeService(repo, nil)

	types, err := svc.FindAll()
	if err != nil {
		t.Fatalf("empty repo is not an error, got: %v", err)
	}
	if len(types) != 0 {
		t.Errorf("expected no types, got %v", types)
	}
}

func TestFindTypeByIDMissing(t *testing.T) {
	svc := NewAccountTypeService(typeRepoWith(checking), nil)

	_, err := svc.FindByID(99)
	if kindOf(t, err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestSaveType(t *testing.T) {
	repo := &mockTypeRepo{
		saveFn: func(ty *models.AccountType) (*models.AccountType, error) {
			ty.ID = 1
			return ty, nil
		},
	}
	publisher := &mockPublisher{}
	svc := NewAccountTypeService(repo, publisher)

	saved, err := svc.Save(models.AccountType{Type: "Checking"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 1 || saved.Type != "Checking" {
		t.Errorf("unexpected result: %+v", saved)
	}
	if len(publisher.events) != 1 || publisher.events[0] != "account-type.created" {
		t.Errorf("expected account-type.created event, got %v", publisher.events)
	}
}

func TestSaveTypeEmptyName(t *testing.T) {
	saveCalls := 0
	repo := &mockTypeRepo{
		saveFn: func(ty *models.AccountType) (*models.AccountType, error) {
			saveCalls++
			return ty, nil
		},
	}
	svc := NewAccountTypeService(repo, nil)

	_, err := svc.Save(models.AccountType{Type: ""})
	if kindOf(t, err) != apperr.KindBadValue {
		t.Errorf("expected bad-value, got %v", err)
	}
	if err.Error() != "Non-empty type value required" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if saveCalls != 0 {
		t.Errorf("save must not reach the store on validation failure")
	}
}

func TestUpdateTypeMerge(t *testing.T) {
	tests := []struct {
		name     string
		patch    models.AccountType
		wantType string
	}{
		{
			name:     "non-empty name replaces stored value",
			patch:    models.AccountType{ID: 1, Type: "Savings"},
			wantType: "Savings",
		},
		{
			name:     "empty name leaves stored value untouched",
			patch:    models.AccountType{ID: 1, Type: ""},
			wantType: "Checking",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := typeRepoWith(checking)
			repo.updateFn = func(ty *models.AccountType) (*models.AccountType, error) { return ty, nil }
			svc := NewAccountTypeService(repo, nil)

			updated, err := svc.Update(tt.patch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.Type != tt.wantType {
				t.Errorf("expected type %q, got %q", tt.wantType, updated.Type)
			}
		})
	}
}

func TestUpdateTypeMissing(t *testing.T) {
	svc := NewAccountTypeService(typeRepoWith(checking), nil)

	_, err := svc.Update(models.AccountType{ID: 99, Type: "Savings"})
	if kindOf(t, err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestDeleteType(t *testing.T) {
	deleted := 0
	repo := typeRepoWith(checking)
	repo.deleteFn = func(id int) error { deleted = id; return nil }
	publisher := &mockPublisher{}
	svc := NewAccountTypeService(repo, publisher)

	if err := svc.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected delete of id 1, got %d", deleted)
	}
	if len(publisher.events) != 1 || publisher.events[0] != "account-type.deleted" {
		t.Errorf("expected account-type.deleted event, got %v", publisher.events)
	}
}

func TestDeleteTypeMissing(t *testing.T) {
	svc := NewAccountTypeService(typeRepoWith(checking), nil)

	if err := svc.Delete(99); kindOf(t, err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}
