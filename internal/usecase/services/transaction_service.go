package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts-service/internal/adapter/cache"
	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/commons"
	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/logger"
)

// TransactionService owns the balance-mutation rules: amounts must be
// positive, and a withdrawal may not push a SAVINGS balance below zero or a
// CHECKING balance below the overdraft floor. Both boundaries are inclusive.
type TransactionService struct {
	accountRepo  domain.AccountRepository
	accountCache *cache.AccountCache
	publisher    domain.EventPublisher
}

func NewTransactionService(
	accountRepo domain.AccountRepository,
	accountCache *cache.AccountCache,
	publisher domain.EventPublisher,
) *TransactionService {
	if publisher == nil {
		publisher = noopPublisher{}
	}

	return &TransactionService{
		accountRepo:  accountRepo,
		accountCache: accountCache,
		publisher:    publisher,
	}
}

func (s *TransactionService) Deposit(ctx context.Context, accountID string, req models.DepositRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("transaction service deposit request", logger.Fields{
		"accountId": accountID,
		"amount":    req.Amount,
	})

	if err := requirePositive(req.Amount); err != nil {
		logger.Error("transaction service deposit amount rejected", err, logger.Fields{
			"accountId": accountID,
			"amount":    req.Amount,
		})
		return commons.ErrorResponse[models.AccountResponse]("validation failed", "Deposit amount must be greater than zero"), err
	}

	account, err := s.accountRepo.Credit(ctx, accountID, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		logger.Error("transaction service deposit repository failed", err, logger.Fields{
			"accountId": accountID,
			"amount":    req.Amount,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to deposit", "Unable to deposit right now"), err
	}

	s.accountCache.Invalidate(ctx, accountID)
	s.publishTransaction(ctx, domain.AccountEventDeposited, account, req.Amount)

	logger.Info("transaction service deposit success", logger.Fields{
		"accountId": account.ID,
		"amount":    req.Amount,
		"balance":   account.Balance,
	})

	return commons.SuccessResponse("deposit completed successfully", models.AccountResponseFrom(account)), nil
}

func (s *TransactionService) Withdraw(ctx context.Context, accountID string, req models.WithdrawRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("transaction service withdraw request", logger.Fields{
		"accountId": accountID,
		"amount":    req.Amount,
	})

	if err := requirePositive(req.Amount); err != nil {
		logger.Error("transaction service withdraw amount rejected", err, logger.Fields{
			"accountId": accountID,
			"amount":    req.Amount,
		})
		return commons.ErrorResponse[models.AccountResponse]("validation failed", "Withdrawal amount must be greater than zero"), err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		logger.Error("transaction service withdraw lookup failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to withdraw", "Unable to withdraw right now"), err
	}

	floor := account.WithdrawalFloor()
	if account.Balance.Sub(req.Amount).LessThan(floor) {
		err := withdrawalPolicyError(account)
		logger.Info("transaction service withdraw refused by policy", logger.Fields{
			"accountId":   accountID,
			"accountType": account.AccountType,
			"amount":      req.Amount,
			"balance":     account.Balance,
		})
		return commons.ErrorResponse[models.AccountResponse]("withdrawal refused", err.Error()), err
	}

	// The store re-evaluates the guard atomically; a concurrent withdrawal
	// that drained the balance between the read and the debit surfaces as the
	// same policy error.
	updated, err := s.accountRepo.Debit(ctx, accountID, req.Amount, floor)
	if err != nil {
		if errors.Is(err, domain.ErrBalanceBelowFloor) {
			policyErr := withdrawalPolicyError(account)
			return commons.ErrorResponse[models.AccountResponse]("withdrawal refused", policyErr.Error()), policyErr
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		logger.Error("transaction service withdraw repository failed", err, logger.Fields{
			"accountId": accountID,
			"amount":    req.Amount,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to withdraw", "Unable to withdraw right now"), err
	}

	s.accountCache.Invalidate(ctx, accountID)
	s.publishTransaction(ctx, domain.AccountEventWithdrawn, updated, req.Amount)

	logger.Info("transaction service withdraw success", logger.Fields{
		"accountId": updated.ID,
		"amount":    req.Amount,
		"balance":   updated.Balance,
	})

	return commons.SuccessResponse("withdrawal completed successfully", models.AccountResponseFrom(updated)), nil
}

func (s *TransactionService) publishTransaction(ctx context.Context, eventType domain.AccountEventType, account domain.Account, amount decimal.Decimal) {
	event := domain.AccountEvent{
		Type:          eventType,
		AccountID:     account.ID,
		AccountNumber: account.AccountNumber,
		CustomerID:    account.CustomerID,
		Amount:        &amount,
		Balance:       account.Balance,
		OccurredAt:    time.Now(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("transaction service publish event failed", err, logger.Fields{
			"eventType": eventType,
			"accountId": account.ID,
		})
	}
}

func requirePositive(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount %s: %w", amount, domain.ErrInvalidAmount)
	}
	return nil
}

func withdrawalPolicyError(account domain.Account) error {
	if account.AccountType == domain.AccountTypeChecking {
		return fmt.Errorf("account %s: %w", account.ID, domain.ErrOverdraftLimitExceeded)
	}
	return fmt.Errorf("account %s: %w", account.ID, domain.ErrInsufficientSavingsBalance)
}
