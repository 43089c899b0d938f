package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r DepositRequest) Validate() error {
	return validateAmount(r.Amount)
}

type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	return validateAmount(r.Amount)
}

// validateAmount only rejects shapes the boundary can see; the positivity
// rule itself lives in the transaction service, which is the source of truth
// even for callers that bypass HTTP.
func validateAmount(amount decimal.Decimal) error {
	var errs []string

	if amount.IsZero() {
		errs = append(errs, "amount is required")
	} else if amount.LessThan(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
