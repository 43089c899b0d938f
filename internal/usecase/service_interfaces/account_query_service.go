package service_interfaces

import (
	"context"

	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/commons"
)

type AccountQueryService interface {
	// GetAccountByID reports an absent account through the found flag; a
	// lookup miss is not an error.
	GetAccountByID(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], bool, error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error)
	ListAccountsByCustomerID(ctx context.Context, customerID string) (commons.Response[[]models.AccountResponse], error)
	CustomerHasAccounts(ctx context.Context, customerID string) (commons.Response[models.CustomerAccountsResponse], error)
	CustomerHasActiveAccounts(ctx context.Context, customerID string) (commons.Response[models.CustomerAccountsResponse], error)
}
