package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/corebank/accounts-service/internal/adapter/cache"
	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/commons"
	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/logger"
)

type AccountService struct {
	accountRepo  domain.AccountRepository
	validator    domain.CustomerValidator
	accountCache *cache.AccountCache
	publisher    domain.EventPublisher
}

func NewAccountService(
	accountRepo domain.AccountRepository,
	validator domain.CustomerValidator,
	accountCache *cache.AccountCache,
	publisher domain.EventPublisher,
) *AccountService {
	if publisher == nil {
		publisher = noopPublisher{}
	}

	return &AccountService{
		accountRepo:  accountRepo,
		validator:    validator,
		accountCache: accountCache,
		publisher:    publisher,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	customerID := strings.TrimSpace(req.CustomerID)

	// Customer validation always precedes persistence; a refused or ambiguous
	// registry answer means zero store writes.
	if err := s.validator.Validate(ctx, customerID); err != nil {
		logger.Error("account service create account customer validation failed", err, logger.Fields{
			"customerId": customerID,
		})
		return commons.ErrorResponse[models.AccountResponse]("customer validation failed", fmt.Sprintf("Customer not found for ID: %s", customerID)), err
	}

	balance := decimal.Zero
	if req.InitialBalance != nil {
		balance = *req.InitialBalance
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	if accountNumber == "" {
		accountNumber = uuid.NewString()
	}

	account := domain.Account{
		AccountNumber: accountNumber,
		Balance:       balance,
		AccountType:   domain.AccountType(strings.ToUpper(strings.TrimSpace(req.AccountType))),
		CustomerID:    customerID,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"customerId": customerID,
		})
		if errors.Is(err, domain.ErrDuplicateAccountNumber) {
			return commons.ErrorResponse[models.AccountResponse]("validation failed", "accountNumber already exists"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	s.publish(ctx, domain.AccountEvent{
		Type:          domain.AccountEventCreated,
		AccountID:     created.ID,
		AccountNumber: created.AccountNumber,
		CustomerID:    created.CustomerID,
		Balance:       created.Balance,
		OccurredAt:    time.Now(),
	})

	logger.Info("account service create account success", logger.Fields{
		"accountId":     created.ID,
		"accountNumber": created.AccountNumber,
		"customerId":    created.CustomerID,
	})

	return commons.SuccessResponse("account created successfully", models.AccountResponseFrom(created)), nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service delete account request", logger.Fields{
		"accountId": accountID,
	})

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		logger.Error("account service delete account lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to delete account", "Unable to delete account right now"), err
	}

	// The lookup already established existence; anything the store raises
	// during the delete itself is re-signaled as one deletion-failure kind.
	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		logger.Error("account service delete account repository failed", err, logger.Fields{
			"accountId": accountID,
		})
		wrapped := fmt.Errorf("account %s: %w", accountID, domain.ErrDeletionFailed)
		return commons.ErrorResponse[models.AccountResponse]("failed to delete account", wrapped.Error()), wrapped
	}

	s.accountCache.Invalidate(ctx, accountID)
	s.publish(ctx, domain.AccountEvent{
		Type:          domain.AccountEventDeleted,
		AccountID:     account.ID,
		AccountNumber: account.AccountNumber,
		CustomerID:    account.CustomerID,
		Balance:       account.Balance,
		OccurredAt:    time.Now(),
	})

	logger.Info("account service delete account success", logger.Fields{
		"accountId": accountID,
	})

	return commons.SuccessResponse("account deleted successfully", models.AccountResponseFrom(account)), nil
}

func (s *AccountService) UpdateBalance(ctx context.Context, accountID string, req models.UpdateBalanceRequest) (commons.Response[models.AccountResponse], bool, error) {
	logger.Info("account service update balance request", logger.Fields{
		"accountId": accountID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service update balance validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), false, err
	}

	// Administrative overwrite: no policy checks apply here.
	updated, err := s.accountRepo.SetBalance(ctx, accountID, *req.Balance)
	if err != nil {
		logger.Error("account service update balance repository failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to update balance", "Unable to update balance right now"), false, err
	}
	if !updated {
		return commons.ErrorResponse[models.AccountResponse]("Account not found"), false, nil
	}

	s.accountCache.Invalidate(ctx, accountID)

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.Error("account service get account after balance update failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to fetch account", "Unable to fetch account right now"), true, err
	}

	logger.Info("account service update balance success", logger.Fields{
		"accountId": accountID,
		"balance":   account.Balance,
	})

	return commons.SuccessResponse("balance updated successfully", models.AccountResponseFrom(account)), true, nil
}

func (s *AccountService) publish(ctx context.Context, event domain.AccountEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("account service publish event failed", err, logger.Fields{
			"eventType": event.Type,
			"accountId": event.AccountID,
		})
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.AccountEvent) error { return nil }
