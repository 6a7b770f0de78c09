package models

// AccountType categorises accounts (checking, savings, ...). The type name
// is unique across all records.
type AccountType struct {
	ID   int    `json:"accountTypeId"`
	Type string `json:"type"`
}

// Account is a financial account owned by exactly one system user. UserID is
// set by the service from the resolved caller identity; client-supplied
// values are never trusted.
type Account struct {
	ID          int         `json:"accountId"`
	Type        AccountType `json:"type"`
	Description string      `json:"description,omitempty"`
	Balance     float64     `json:"balance"`
	UserID      int         `json:"userId"`
}

// Identity is the system user resolved from a caller token by the
// user-auth-service. It lives for a single request and is never persisted.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
