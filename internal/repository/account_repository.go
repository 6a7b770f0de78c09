package repository

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
	"github.com/jwilson717/Expenser-AccountsService/internal/models"
)

const accountColumns = `a.account_id, a.description, a.balance, a.system_user_id, t.account_type_id, t.type`

// AccountRepository persists account records. Every read joins the type so
// callers always get a fully populated Account.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func scanAccount(row interface{ Scan(...any) error }) (*models.Account, error) {
	var a models.Account
	var desc sql.NullString
	err := row.Scan(&a.ID, &desc, &a.Balance, &a.UserID, &a.Type.ID, &a.Type.Type)
	if err != nil {
		return nil, err
	}
	a.Description = desc.String
	return &a, nil
}

func (r *AccountRepository) FindByID(id int) (*models.Account, error) {
	row := r.db.QueryRow(`
		SELECT `+accountColumns+`
		FROM accounts a
		JOIN account_type t ON a.account_type_id = t.account_type_id
		WHERE a.account_id = $1
	`, id)
	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.AccountNotFound("")
	}
	if err != nil {
		slog.Error("failed to get account", "id", id, "error", err)
		return nil, apperr.Processing("")
	}
	return account, nil
}

// FindByUserID lists all accounts owned by userID. An empty result is not an
// error here; the service layer decides how to treat it.
func (r *AccountRepository) FindByUserID(userID int) ([]models.Account, error) {
	rows, err := r.db.Query(`
		SELECT `+accountColumns+`
		FROM accounts a
		JOIN account_type t ON a.account_type_id = t.account_type_id
		WHERE a.system_user_id = $1
		ORDER BY a.account_id
	`, userID)
	if err != nil {
		slog.Error("failed to list accounts", "userId", userID, "error", err)
		return nil, apperr.Processing("")
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			slog.Error("failed to scan account", "error", err)
			return nil, apperr.Processing("")
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read accounts", "error", err)
		return nil, apperr.Processing("")
	}
	return accounts, nil
}

// Save inserts a new account and returns it with the store-assigned id.
func (r *AccountRepository) Save(account *models.Account) (*models.Account, error) {
	err := r.db.QueryRow(`
		INSERT INTO accounts (account_type_id, description, balance, system_user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING account_id
	`, account.Type.ID, nullable(account.Description), account.Balance, account.UserID).
		Scan(&account.ID)
	if err != nil {
		slog.Error("failed to save account", "error", err)
		return nil, apperr.Processing("")
	}
	return account, nil
}

// Update persists the merged record. The owner column is deliberately not in
// the SET list: ownership never changes after creation.
func (r *AccountRepository) Update(account *models.Account) (*models.Account, error) {
	result, err := r.db.Exec(`
		UPDATE accounts
		SET account_type_id = $2, description = $3, balance = $4
		WHERE account_id = $1
	`, account.ID, account.Type.ID, nullable(account.Description), account.Balance)
	if err != nil {
		slog.Error("failed to update account", "id", account.ID, "error", err)
		return nil, apperr.Processing("")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, apperr.Processing("")
	}
	if rows == 0 {
		return nil, apperr.AccountNotFound("")
	}
	return account, nil
}

func (r *AccountRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM accounts WHERE account_id = $1`, id)
	if err != nil {
		slog.Error("failed to delete account", "id", id, "error", err)
		return apperr.Processing("")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.Processing("")
	}
	if rows == 0 {
		return apperr.AccountNotFound("")
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
