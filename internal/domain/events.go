package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AccountEventType string

const (
	AccountEventCreated   AccountEventType = "account.created"
	AccountEventDeposited AccountEventType = "account.deposited"
	AccountEventWithdrawn AccountEventType = "account.withdrawn"
	AccountEventDeleted   AccountEventType = "account.deleted"
)

type AccountEvent struct {
	Type          AccountEventType `json:"type"`
	AccountID     string           `json:"accountId"`
	AccountNumber string           `json:"accountNumber"`
	CustomerID    string           `json:"customerId"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Balance       decimal.Decimal  `json:"balance"`
	OccurredAt    time.Time        `json:"occurredAt"`
}

// EventPublisher emits account events after successful mutations. Publishing
// is best-effort: services log failures and never fail the operation over
// them.
type EventPublisher interface {
	Publish(ctx context.Context, event AccountEvent) error
}
