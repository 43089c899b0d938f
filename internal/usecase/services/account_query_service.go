package services

import (
	"context"
	"errors"

	"github.com/corebank/accounts-service/internal/adapter/cache"
	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/commons"
	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/logger"
)

// AccountQueryService is the read side: plain projections over the account
// store, no business rules. The cache only ever serves this path.
type AccountQueryService struct {
	accountRepo  domain.AccountRepository
	accountCache *cache.AccountCache
}

func NewAccountQueryService(accountRepo domain.AccountRepository, accountCache *cache.AccountCache) *AccountQueryService {
	return &AccountQueryService{
		accountRepo:  accountRepo,
		accountCache: accountCache,
	}
}

func (s *AccountQueryService) GetAccountByID(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], bool, error) {
	if cached, ok := s.accountCache.Get(ctx, accountID); ok {
		return commons.SuccessResponse("account fetched successfully", models.AccountResponseFrom(*cached)), true, nil
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), false, nil
		}
		logger.Error("account query service get account failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", "Unable to fetch account right now"), false, err
	}

	s.accountCache.Set(ctx, account)

	return commons.SuccessResponse("account fetched successfully", models.AccountResponseFrom(account)), true, nil
}

func (s *AccountQueryService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		logger.Error("account query service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to fetch accounts right now"), err
	}

	return commons.SuccessResponse("accounts fetched successfully", models.AccountResponsesFrom(accounts)), nil
}

func (s *AccountQueryService) ListAccountsByCustomerID(ctx context.Context, customerID string) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("account query service list accounts by customer failed", err, logger.Fields{
			"customerId": customerID,
		})
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to fetch accounts right now"), err
	}

	// No accounts for a customer is an empty list, never a failure.
	return commons.SuccessResponse("accounts fetched successfully", models.AccountResponsesFrom(accounts)), nil
}

func (s *AccountQueryService) CustomerHasAccounts(ctx context.Context, customerID string) (commons.Response[models.CustomerAccountsResponse], error) {
	exists, err := s.accountRepo.ExistsByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("account query service customer has accounts failed", err, logger.Fields{
			"customerId": customerID,
		})
		return commons.ErrorResponse[models.CustomerAccountsResponse]("failed to check accounts", "Unable to check accounts right now"), err
	}

	return commons.SuccessResponse("customer accounts checked successfully", models.CustomerAccountsResponse{
		CustomerID:  customerID,
		HasAccounts: exists,
	}), nil
}

func (s *AccountQueryService) CustomerHasActiveAccounts(ctx context.Context, customerID string) (commons.Response[models.CustomerAccountsResponse], error) {
	accounts, err := s.accountRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("account query service customer has active accounts failed", err, logger.Fields{
			"customerId": customerID,
		})
		return commons.ErrorResponse[models.CustomerAccountsResponse]("failed to check accounts", "Unable to check accounts right now"), err
	}

	return commons.SuccessResponse("customer accounts checked successfully", models.CustomerAccountsResponse{
		CustomerID:  customerID,
		HasAccounts: len(accounts) > 0,
	}), nil
}
