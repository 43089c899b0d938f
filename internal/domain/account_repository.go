package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByID(ctx context.Context, accountID string) (Account, error)
	GetAll(ctx context.Context) ([]Account, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]Account, error)
	ExistsByCustomerID(ctx context.Context, customerID string) (bool, error)

	// Credit adds amount to the account balance and returns the updated row.
	Credit(ctx context.Context, accountID string, amount decimal.Decimal) (Account, error)

	// Debit subtracts amount from the account balance, refusing with
	// ErrBalanceBelowFloor when the resulting balance would drop below floor.
	// The guard and the mutation are atomic with respect to concurrent debits
	// on the same account.
	Debit(ctx context.Context, accountID string, amount decimal.Decimal, floor decimal.Decimal) (Account, error)

	// SetBalance overwrites the balance without any policy guard. It reports
	// false, not an error, when the account does not exist.
	SetBalance(ctx context.Context, accountID string, balance decimal.Decimal) (bool, error)

	Delete(ctx context.Context, accountID string) error
}
