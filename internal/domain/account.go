package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

// CheckingOverdraftFloor is the most-negative balance a CHECKING account may
// reach. The boundary is inclusive: a withdrawal landing exactly on the floor
// is permitted.
var CheckingOverdraftFloor = decimal.NewFromInt(-500)

type Account struct {
	ID            string
	AccountNumber string
	Balance       decimal.Decimal
	AccountType   AccountType
	CustomerID    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WithdrawalFloor returns the lowest balance the account may hold after a
// withdrawal: zero for savings, the overdraft floor for checking.
func (a Account) WithdrawalFloor() decimal.Decimal {
	if a.AccountType == AccountTypeChecking {
		return CheckingOverdraftFloor
	}
	return decimal.Zero
}

func (t AccountType) Valid() bool {
	return t == AccountTypeSavings || t == AccountTypeChecking
}
