package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/corebank/accounts-service/internal/domain"
)

// AccountRepository is a mutex-serialized in-memory store with the same
// contract as the postgres adapter. Check-then-mutate pairs run under the
// lock, so concurrent debits on one account cannot both pass the guard.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.AccountNumber == account.AccountNumber {
			return domain.Account{}, fmt.Errorf("account number %s: %w", account.AccountNumber, domain.ErrDuplicateAccountNumber)
		}
	}

	now := time.Now()
	account.ID = uuid.NewString()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.accounts[account.ID] = account

	return account, nil
}

func (r *AccountRepository) GetByID(_ context.Context, accountID string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.get(accountID)
}

func (r *AccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}
	sortByCreation(accounts)

	return accounts, nil
}

func (r *AccountRepository) GetByCustomerID(_ context.Context, customerID string) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]domain.Account, 0)
	for _, account := range r.accounts {
		if account.CustomerID == customerID {
			accounts = append(accounts, account)
		}
	}
	sortByCreation(accounts)

	return accounts, nil
}

func (r *AccountRepository) ExistsByCustomerID(_ context.Context, customerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.CustomerID == customerID {
			return true, nil
		}
	}

	return false, nil
}

func (r *AccountRepository) Credit(_ context.Context, accountID string, amount decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, err := r.get(accountID)
	if err != nil {
		return domain.Account{}, err
	}

	account.Balance = account.Balance.Add(amount)
	account.UpdatedAt = time.Now()
	r.accounts[accountID] = account

	return account, nil
}

func (r *AccountRepository) Debit(_ context.Context, accountID string, amount decimal.Decimal, floor decimal.Decimal) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, err := r.get(accountID)
	if err != nil {
		return domain.Account{}, err
	}

	newBalance := account.Balance.Sub(amount)
	if newBalance.LessThan(floor) {
		return domain.Account{}, fmt.Errorf("account %s: %w", accountID, domain.ErrBalanceBelowFloor)
	}

	account.Balance = newBalance
	account.UpdatedAt = time.Now()
	r.accounts[accountID] = account

	return account, nil
}

func (r *AccountRepository) SetBalance(_ context.Context, accountID string, balance decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return false, nil
	}

	account.Balance = balance
	account.UpdatedAt = time.Now()
	r.accounts[accountID] = account

	return true, nil
}

func (r *AccountRepository) Delete(_ context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[accountID]; !ok {
		return fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
	}

	delete(r.accounts, accountID)
	return nil
}

func (r *AccountRepository) get(accountID string) (domain.Account, error) {
	account, ok := r.accounts[accountID]
	if !ok {
		return domain.Account{}, fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
	}

	return account, nil
}

func sortByCreation(accounts []domain.Account) {
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
}
