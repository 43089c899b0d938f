package service_interfaces

import (
	"context"

	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/commons"
)

type TransactionService interface {
	Deposit(ctx context.Context, accountID string, req models.DepositRequest) (commons.Response[models.AccountResponse], error)
	Withdraw(ctx context.Context, accountID string, req models.WithdrawRequest) (commons.Response[models.AccountResponse], error)
}
