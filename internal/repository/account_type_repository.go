package repository

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
	"github.com/jwilson717/Expenser-AccountsService/internal/models"
)

// AccountTypeRepository persists account_type records.
type AccountTypeRepository struct {
	db *sql.DB
}

func NewAccountTypeRepository(db *sql.DB) *AccountTypeRepository {
	return &AccountTypeRepository{db: db}
}

func (r *AccountTypeRepository) FindAll() ([]models.AccountType, error) {
	rows, err := r.db.Query(`SELECT account_type_id, type FROM account_type ORDER BY account_type_id`)
	if err != nil {
		slog.Error("failed to list account types", "error", err)
		return nil, apperr.Processing("")
	}
	defer rows.Close()

	var types []models.AccountType
	for rows.Next() {
		var t models.AccountType
		if err := rows.Scan(&t.ID, &t.Type); err != nil {
			slog.Error("failed to scan account type", "error", err)
			return nil, apperr.Processing("")
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read account types", "error", err)
		return nil, apperr.Processing("")
	}
	return types, nil
}

func (r *AccountTypeRepository) FindByID(id int) (*models.AccountType, error) {
	var t models.AccountType
	err := r.db.QueryRow(`SELECT account_type_id, type FROM account_type WHERE account_type_id = $1`, id).
		Scan(&t.ID, &t.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.TypeNotFound("")
	}
	if err != nil {
		slog.Error("failed to get account type", "id", id, "error", err)
		return nil, apperr.Processing("")
	}
	return &t, nil
}

// Save inserts a new type and returns it with the store-assigned id.
func (r *AccountTypeRepository) Save(t *models.AccountType) (*models.AccountType, error) {
	err := r.db.QueryRow(`INSERT INTO account_type (type) VALUES ($1) RETURNING account_type_id`, t.Type).
		Scan(&t.ID)
	if err != nil {
		slog.Error("failed to save account type", "error", err)
		return nil, apperr.Processing("")
	}
	return t, nil
}

func (r *AccountTypeRepository) Update(t *models.AccountType) (*models.AccountType, error) {
	result, err := r.db.Exec(`UPDATE account_type SET type = $2 WHERE account_type_id = $1`, t.ID, t.Type)
	if err != nil {
		slog.Error("failed to update account type", "id", t.ID, "error", err)
		return nil, apperr.Processing("")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, apperr.Processing("")
	}
	if rows == 0 {
		return nil, apperr.TypeNotFound("")
	}
	return t, nil
}

func (r *AccountTypeRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM account_type WHERE account_type_id = $1`, id)
	if err != nil {
		slog.Error("failed to delete account type", "id", id, "error", err)
		return apperr.Processing("")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.Processing("")
	}
	if rows == 0 {
		return apperr.TypeNotFound("")
	}
	return nil
}
