package services_test

import (
	"context"
	"testing"

	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/usecase/services"
)

func TestAccountQueryServiceGetAccountByID(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountQueryService(repo, nil)
	account := seedAccount(t, repo, domain.AccountTypeChecking, "75", "cust-1")

	response, found, err := svc.GetAccountByID(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !found {
		t.Fatal("expected found=true for existing account")
	}
	if response.Data == nil || response.Data.ID != account.ID {
		t.Fatalf("expected account %s, got %+v", account.ID, response.Data)
	}
	if response.Data.AccountType != string(domain.AccountTypeChecking) {
		t.Fatalf("expected CHECKING account type, got %s", response.Data.AccountType)
	}
}

func TestAccountQueryServiceGetAccountByIDMissIsNotAnError(t *testing.T) {
	svc := services.NewAccountQueryService(newCountingRepo(), nil)

	response, found, err := svc.GetAccountByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected soft miss, got error %v", err)
	}
	if found {
		t.Fatal("expected found=false for missing account")
	}
	if response.Success {
		t.Fatal("expected failure envelope for missing account")
	}
}

func TestAccountQueryServiceListAccounts(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountQueryService(repo, nil)
	seedAccount(t, repo, domain.AccountTypeSavings, "10", "cust-1")
	seedAccount(t, repo, domain.AccountTypeChecking, "20", "cust-2")

	response, err := svc.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("list accounts failed: %v", err)
	}
	if response.Data == nil || len(*response.Data) != 2 {
		t.Fatalf("expected 2 accounts, got %+v", response.Data)
	}
}

func TestAccountQueryServiceListAccountsByCustomer(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountQueryService(repo, nil)
	seedAccount(t, repo, domain.AccountTypeSavings, "10", "cust-1")
	seedAccount(t, repo, domain.AccountTypeChecking, "20", "cust-1")
	seedAccount(t, repo, domain.AccountTypeSavings, "30", "cust-2")

	response, err := svc.ListAccountsByCustomerID(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("list accounts by customer failed: %v", err)
	}
	if response.Data == nil || len(*response.Data) != 2 {
		t.Fatalf("expected 2 accounts for cust-1, got %+v", response.Data)
	}
	for _, account := range *response.Data {
		if account.CustomerID != "cust-1" {
			t.Fatalf("unexpected account %+v in cust-1 listing", account)
		}
	}
}

func TestAccountQueryServiceListAccountsByCustomerEmpty(t *testing.T) {
	svc := services.NewAccountQueryService(newCountingRepo(), nil)

	response, err := svc.ListAccountsByCustomerID(context.Background(), "cust-without-accounts")
	if err != nil {
		t.Fatalf("expected empty listing, got error %v", err)
	}
	if !response.Success {
		t.Fatal("expected success envelope for empty listing")
	}
	if response.Data == nil || len(*response.Data) != 0 {
		t.Fatalf("expected empty account list, got %+v", response.Data)
	}
}

func TestAccountQueryServiceCustomerHasAccounts(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountQueryService(repo, nil)
	seedAccount(t, repo, domain.AccountTypeSavings, "10", "cust-1")

	response, err := svc.CustomerHasAccounts(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("customer has accounts failed: %v", err)
	}
	if response.Data == nil || !response.Data.HasAccounts {
		t.Fatalf("expected hasAccounts=true, got %+v", response.Data)
	}

	response, err = svc.CustomerHasAccounts(context.Background(), "cust-2")
	if err != nil {
		t.Fatalf("customer has accounts failed: %v", err)
	}
	if response.Data == nil || response.Data.HasAccounts {
		t.Fatalf("expected hasAccounts=false, got %+v", response.Data)
	}
}

func TestAccountQueryServiceCustomerHasActiveAccounts(t *testing.T) {
	repo := newCountingRepo()
	svc := services.NewAccountQueryService(repo, nil)
	account := seedAccount(t, repo, domain.AccountTypeChecking, "10", "cust-1")

	response, err := svc.CustomerHasActiveAccounts(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("customer has active accounts failed: %v", err)
	}
	if response.Data == nil || !response.Data.HasAccounts {
		t.Fatalf("expected hasAccounts=true, got %+v", response.Data)
	}

	if err := repo.Delete(context.Background(), account.ID); err != nil {
		t.Fatalf("delete seeded account: %v", err)
	}

	response, err = svc.CustomerHasActiveAccounts(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("customer has active accounts failed: %v", err)
	}
	if response.Data == nil || response.Data.HasAccounts {
		t.Fatalf("expected hasAccounts=false after deletion, got %+v", response.Data)
	}
}
