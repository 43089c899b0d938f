package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/usecase/services"
)

func TestAccountServiceCreateAccountValidationError(t *testing.T) {
	svc := services.NewAccountService(newCountingRepo(), &fakeValidator{}, nil, nil)

	_, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create account request")
	}
}

func TestAccountServiceCreateAccountRejectsUnknownCustomer(t *testing.T) {
	repo := newCountingRepo()
	validator := &fakeValidator{err: domain.ErrCustomerNotFound}
	svc := services.NewAccountService(repo, validator, nil, nil)

	_, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:  "cust-404",
		AccountType: "SAVINGS",
	})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	if validator.calls != 1 {
		t.Fatalf("expected exactly 1 validator call, got %d", validator.calls)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no store write after failed validation, got %d create calls", repo.createCalls)
	}
}

func TestAccountServiceCreateAccountPersistsValidatedAccount(t *testing.T) {
	repo := newCountingRepo()
	validator := &fakeValidator{}
	publisher := &capturePublisher{}
	svc := services.NewAccountService(repo, validator, nil, publisher)

	balance := mustDecimal(t, "1000")
	response, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:     "1",
		AccountType:    "CHECKING",
		InitialBalance: &balance,
	})
	if err != nil {
		t.Fatalf("create account failed: %v", err)
	}

	if response.Data == nil {
		t.Fatal("expected account data in response")
	}
	if response.Data.ID == "" {
		t.Fatal("expected store-assigned account id")
	}
	if response.Data.AccountNumber == "" {
		t.Fatal("expected generated account number")
	}
	if !mustDecimal(t, response.Data.Balance).Equal(balance) {
		t.Fatalf("expected balance 1000, got %s", response.Data.Balance)
	}

	stored, err := repo.GetByID(context.Background(), response.Data.ID)
	if err != nil {
		t.Fatalf("stored account lookup failed: %v", err)
	}
	if !stored.Balance.Equal(balance) {
		t.Fatalf("expected persisted balance 1000, got %s", stored.Balance)
	}

	if repo.createCalls != 1 || validator.calls != 1 {
		t.Fatalf("expected exactly one validator call and one store write, got %d/%d", validator.calls, repo.createCalls)
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != domain.AccountEventCreated {
		t.Fatalf("expected one %s event, got %+v", domain.AccountEventCreated, publisher.events)
	}
}

func TestAccountServiceCreateAccountDefaultsBalanceToZero(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountService(repo, &fakeValidator{}, nil, nil)

	response, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:  "cust-1",
		AccountType: "SAVINGS",
	})
	if err != nil {
		t.Fatalf("create account failed: %v", err)
	}
	if response.Data == nil || !mustDecimal(t, response.Data.Balance).Equal(decimal.Zero) {
		t.Fatalf("expected zero balance, got %+v", response.Data)
	}
}

func TestAccountServiceCreateAccountKeepsSuppliedAccountNumber(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountService(repo, &fakeValidator{}, nil, nil)

	response, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:    "cust-1",
		AccountType:   "SAVINGS",
		AccountNumber: "ACC-0001",
	})
	if err != nil {
		t.Fatalf("create account failed: %v", err)
	}
	if response.Data == nil || response.Data.AccountNumber != "ACC-0001" {
		t.Fatalf("expected supplied account number to be kept, got %+v", response.Data)
	}

	_, err = svc.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:    "cust-2",
		AccountType:   "CHECKING",
		AccountNumber: "ACC-0001",
	})
	if !errors.Is(err, domain.ErrDuplicateAccountNumber) {
		t.Fatalf("expected ErrDuplicateAccountNumber, got %v", err)
	}
}

func TestAccountServiceDeleteAccountReturnsSnapshot(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountService(repo, &fakeValidator{}, nil, nil)
	account := seedAccount(t, repo, domain.AccountTypeSavings, "250", "cust-1")

	response, err := svc.DeleteAccount(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("delete account failed: %v", err)
	}

	if repo.deleteCalls != 1 {
		t.Fatalf("expected exactly one store delete, got %d", repo.deleteCalls)
	}
	if response.Data == nil || response.Data.ID != account.ID {
		t.Fatalf("expected pre-deletion snapshot of %s, got %+v", account.ID, response.Data)
	}
	if !mustDecimal(t, response.Data.Balance).Equal(mustDecimal(t, "250")) {
		t.Fatalf("expected snapshot balance 250, got %s", response.Data.Balance)
	}

	if _, err := repo.GetByID(context.Background(), account.ID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected account gone after delete, got %v", err)
	}
}

func TestAccountServiceDeleteAccountNotFound(t *testing.T) {
	svc := services.NewAccountService(newCountingRepo(), &fakeValidator{}, nil, nil)

	_, err := svc.DeleteAccount(context.Background(), "missing")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountServiceDeleteAccountStoreFailure(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountService(&failingDeleteRepo{countingRepo: repo}, &fakeValidator{}, nil, nil)
	account := seedAccount(t, repo, domain.AccountTypeSavings, "10", "cust-1")

	_, err := svc.DeleteAccount(context.Background(), account.ID)
	if !errors.Is(err, domain.ErrDeletionFailed) {
		t.Fatalf("expected ErrDeletionFailed, got %v", err)
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatal("deletion failure must stay distinct from account-not-found")
	}
}

type failingDeleteRepo struct {
	*countingRepo
}

func (r *failingDeleteRepo) Delete(context.Context, string) error {
	return errors.New("connection reset")
}

func TestAccountServiceUpdateBalanceNotFoundIsNotAnError(t *testing.T) {
	svc := services.NewAccountService(newCountingRepo(), &fakeValidator{}, nil, nil)

	balance := mustDecimal(t, "100")
	_, updated, err := svc.UpdateBalance(context.Background(), "missing", models.UpdateBalanceRequest{Balance: &balance})
	if err != nil {
		t.Fatalf("expected soft not-updated signal, got error %v", err)
	}
	if updated {
		t.Fatal("expected updated=false for missing account")
	}
}

func TestAccountServiceUpdateBalanceBypassesWithdrawalPolicy(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountService(repo, &fakeValidator{}, nil, nil)
	account := seedAccount(t, repo, domain.AccountTypeSavings, "500", "cust-1")

	// The administrative overwrite may set states the transaction rules would
	// refuse, a negative savings balance included.
	balance := mustDecimal(t, "-900")
	response, updated, err := svc.UpdateBalance(context.Background(), account.ID, models.UpdateBalanceRequest{Balance: &balance})
	if err != nil {
		t.Fatalf("update balance failed: %v", err)
	}
	if !updated {
		t.Fatal("expected updated=true")
	}
	if response.Data == nil || !mustDecimal(t, response.Data.Balance).Equal(balance) {
		t.Fatalf("expected balance -900, got %+v", response.Data)
	}
}

func TestAccountServiceUpdateBalanceRequiresBalanceField(t *testing.T) {
	svc := services.NewAccountService(newCountingRepo(), &fakeValidator{}, nil, nil)

	_, _, err := svc.UpdateBalance(context.Background(), "any-id", models.UpdateBalanceRequest{})
	if err == nil {
		t.Fatal("expected validation error for missing balance")
	}
}
