package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts-service/internal/domain"
)

type CreateAccountRequest struct {
	CustomerID     string           `json:"customerId"`
	AccountType    string           `json:"accountType"`
	AccountNumber  string           `json:"accountNumber,omitempty"`
	InitialBalance *decimal.Decimal `json:"balance,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CustomerID) == "" {
		errs = append(errs, "customerId is required")
	}

	accountType := strings.ToUpper(strings.TrimSpace(r.AccountType))
	if accountType == "" {
		errs = append(errs, "accountType is required")
	} else if !domain.AccountType(accountType).Valid() {
		errs = append(errs, "accountType must be one of SAVINGS, CHECKING")
	}

	if r.InitialBalance != nil && r.InitialBalance.LessThan(decimal.Zero) {
		errs = append(errs, "balance cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	ID            string `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
	AccountType   string `json:"accountType"`
	CustomerID    string `json:"customerId"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func AccountResponseFrom(account domain.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance.String(),
		AccountType:   string(account.AccountType),
		CustomerID:    account.CustomerID,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     account.UpdatedAt.Format(time.RFC3339),
	}
}

func AccountResponsesFrom(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, AccountResponseFrom(account))
	}
	return out
}

type UpdateBalanceRequest struct {
	Balance *decimal.Decimal `json:"balance"`
}

func (r UpdateBalanceRequest) Validate() error {
	if r.Balance == nil {
		return errors.New("balance is required")
	}
	return nil
}

type CustomerAccountsResponse struct {
	CustomerID  string `json:"customerId"`
	HasAccounts bool   `json:"hasAccounts"`
}
