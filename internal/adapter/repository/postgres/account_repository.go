package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/logger"
)

const uniqueViolation = "23505"

const accountColumns = `id, account_number, balance, account_type, customer_id, created_at, updated_at`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"customerId":    account.CustomerID,
		"accountNumber": account.AccountNumber,
		"accountType":   account.AccountType,
	})

	const query = `
INSERT INTO accounts (
	account_number,
	balance,
	account_type,
	customer_id
) VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.AccountNumber,
		account.Balance,
		account.AccountType,
		account.CustomerID,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.Account{}, fmt.Errorf("account number %s: %w", account.AccountNumber, domain.ErrDuplicateAccountNumber)
		}
		logger.Error("account repository create failed", err, logger.Fields{
			"customerId":    account.CustomerID,
			"accountNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	logger.Info("account repository create success", logger.Fields{
		"accountId":     account.ID,
		"accountNumber": account.AccountNumber,
	})

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID string) (domain.Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
		}
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func (r *AccountRepository) GetByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE customer_id = $1
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts by customer id: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func (r *AccountRepository) ExistsByCustomerID(ctx context.Context, customerID string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM accounts
	WHERE customer_id = $1
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, customerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check accounts by customer id: %w", err)
	}

	return exists, nil
}

func (r *AccountRepository) Credit(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Account, error) {
	logger.Info("account repository credit", logger.Fields{
		"accountId": accountID,
		"amount":    amount,
	})

	const query = `
UPDATE accounts
SET balance = balance + $2::numeric,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + accountColumns

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountID, amount))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
		}
		logger.Error("account repository credit failed", err, logger.Fields{
			"accountId": accountID,
			"amount":    amount,
		})
		return domain.Account{}, fmt.Errorf("credit account: %w", err)
	}

	return account, nil
}

// Debit performs the balance guard and the mutation in a single conditional
// UPDATE, so two concurrent debits on the same account cannot both pass the
// check against a stale balance. A zero-row result is disambiguated with a
// follow-up read to tell "absent" from "refused".
func (r *AccountRepository) Debit(ctx context.Context, accountID string, amount decimal.Decimal, floor decimal.Decimal) (domain.Account, error) {
	logger.Info("account repository debit", logger.Fields{
		"accountId": accountID,
		"amount":    amount,
		"floor":     floor,
	})

	const query = `
UPDATE accounts
SET balance = balance - $2::numeric,
    updated_at = NOW()
WHERE id = $1
  AND balance - $2::numeric >= $3::numeric
RETURNING ` + accountColumns

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountID, amount, floor))
	if err == nil {
		return account, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.Error("account repository debit failed", err, logger.Fields{
			"accountId": accountID,
			"amount":    amount,
		})
		return domain.Account{}, fmt.Errorf("debit account: %w", err)
	}

	if _, getErr := r.GetByID(ctx, accountID); getErr != nil {
		return domain.Account{}, getErr
	}

	return domain.Account{}, fmt.Errorf("account %s: %w", accountID, domain.ErrBalanceBelowFloor)
}

func (r *AccountRepository) SetBalance(ctx context.Context, accountID string, balance decimal.Decimal) (bool, error) {
	logger.Info("account repository set balance", logger.Fields{
		"accountId": accountID,
		"balance":   balance,
	})

	const query = `
UPDATE accounts
SET balance = $2::numeric,
    updated_at = NOW()
WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, accountID, balance)
	if err != nil {
		return false, fmt.Errorf("set account balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set account balance rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *AccountRepository) Delete(ctx context.Context, accountID string) error {
	logger.Info("account repository delete", logger.Fields{
		"accountId": accountID,
	})

	const query = `DELETE FROM accounts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, accountID)
	if err != nil {
		logger.Error("account repository delete failed", err, logger.Fields{
			"accountId": accountID,
		})
		return fmt.Errorf("delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("account %s: %w", accountID, domain.ErrAccountNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.Balance,
		&account.AccountType,
		&account.CustomerID,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

func collectAccounts(rows *sql.Rows) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return accounts, nil
}
