package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts-service/internal/adapter/repository/memory"
	"github.com/corebank/accounts-service/internal/domain"
)

// countingRepo wraps the in-memory store and counts write-side calls so tests
// can assert that a refused operation never touched the store.
type countingRepo struct {
	domain.AccountRepository
	createCalls int
	creditCalls int
	debitCalls  int
	deleteCalls int
}

func newCountingRepo() *countingRepo {
	return &countingRepo{AccountRepository: memory.NewAccountRepository()}
}

func (r *countingRepo) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	r.createCalls++
	return r.AccountRepository.Create(ctx, account)
}

func (r *countingRepo) Credit(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Account, error) {
	r.creditCalls++
	return r.AccountRepository.Credit(ctx, accountID, amount)
}

func (r *countingRepo) Debit(ctx context.Context, accountID string, amount, floor decimal.Decimal) (domain.Account, error) {
	r.debitCalls++
	return r.AccountRepository.Debit(ctx, accountID, amount, floor)
}

func (r *countingRepo) Delete(ctx context.Context, accountID string) error {
	r.deleteCalls++
	return r.AccountRepository.Delete(ctx, accountID)
}

type fakeValidator struct {
	err   error
	calls int
}

func (v *fakeValidator) Validate(_ context.Context, customerID string) error {
	v.calls++
	if v.err != nil {
		return fmt.Errorf("customer %s: %w", customerID, v.err)
	}
	return nil
}

type capturePublisher struct {
	events []domain.AccountEvent
}

func (p *capturePublisher) Publish(_ context.Context, event domain.AccountEvent) error {
	p.events = append(p.events, event)
	return nil
}

func seedAccount(t *testing.T, repo domain.AccountRepository, accountType domain.AccountType, balance string, customerID string) domain.Account {
	t.Helper()

	bal, err := decimal.NewFromString(balance)
	if err != nil {
		t.Fatalf("parse balance %q: %v", balance, err)
	}

	account, err := repo.Create(context.Background(), domain.Account{
		AccountNumber: fmt.Sprintf("acct-%s-%s-%s", accountType, customerID, balance),
		Balance:       bal,
		AccountType:   accountType,
		CustomerID:    customerID,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}

	return account
}

func mustDecimal(t *testing.T, raw string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return d
}
