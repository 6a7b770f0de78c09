package events

import "time"

// Event types
const (
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"

	AccountTypeCreated = "account-type.created"
	AccountTypeUpdated = "account-type.updated"
	AccountTypeDeleted = "account-type.deleted"
)

// AccountEventsStream carries every account and account-type lifecycle event.
const AccountEventsStream = "account.events"

// Event is the envelope written to the stream.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountEvent struct {
	AccountID int     `json:"accountId"`
	UserID    int     `json:"userId"`
	Type      string  `json:"type"`
	Balance   float64 `json:"balance"`
}

type AccountDeletedEvent struct {
	AccountID int `json:"accountId"`
	UserID    int `json:"userId"`
}

type AccountTypeEvent struct {
	AccountTypeID int    `json:"accountTypeId"`
	Type          string `json:"type"`
}
