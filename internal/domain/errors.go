package domain

import "errors"

var ErrInvalidAmount = errors.New("amount must be greater than zero")
var ErrAccountNotFound = errors.New("account not found")
var ErrCustomerNotFound = errors.New("customer not found")
var ErrInsufficientSavingsBalance = errors.New("insufficient balance for withdrawal in savings account")
var ErrOverdraftLimitExceeded = errors.New("withdrawal exceeds overdraft limit for checking account")
var ErrDeletionFailed = errors.New("error deleting account")
var ErrDuplicateAccountNumber = errors.New("account number already exists")

// ErrBalanceBelowFloor is the store-level signal that a guarded debit was
// refused. The transaction service maps it onto the account-type policy error.
var ErrBalanceBelowFloor = errors.New("balance would fall below the permitted floor")
