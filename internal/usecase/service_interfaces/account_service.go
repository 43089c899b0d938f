package service_interfaces

import (
	"context"

	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	DeleteAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error)

	// UpdateBalance is the administrative overwrite path. It reports a missing
	// account through the updated flag, not through an error: callers must be
	// able to tell "no-op because not found" from a business-rule violation.
	UpdateBalance(ctx context.Context, accountID string, req models.UpdateBalanceRequest) (commons.Response[models.AccountResponse], bool, error)
}
