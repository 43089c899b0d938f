package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/commons"
	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/logger"
	"github.com/corebank/accounts-service/internal/usecase/service_interfaces"
)

type AccountController struct {
	accounts service_interfaces.AccountService
	queries  service_interfaces.AccountQueryService
}

func NewAccountController(accounts service_interfaces.AccountService, queries service_interfaces.AccountQueryService) *AccountController {
	return &AccountController{accounts: accounts, queries: queries}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /accounts", c.createAccount)
	mux.HandleFunc("GET /accounts", c.listAccounts)
	mux.HandleFunc("GET /accounts/{accountId}", c.getAccount)
	mux.HandleFunc("DELETE /accounts/{accountId}", c.deleteAccount)
	mux.HandleFunc("GET /accounts/customer/{customerId}", c.customerHasAccounts)
	mux.HandleFunc("GET /accounts/customer/{customerId}/active", c.customerHasActiveAccounts)

	updateBalance := http.Handler(http.HandlerFunc(c.updateBalance))
	if authMiddleware != nil {
		updateBalance = authMiddleware(updateBalance)
	}
	mux.Handle("PUT /accounts/{accountId}/balance", updateBalance)
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.accounts.CreateAccount(r.Context(), req)
	if err != nil {
		status := statusForError(err, response.Message)
		logError(r, err, nil)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusCreated, response, start)
	writeJSON(w, http.StatusCreated, response)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.queries.ListAccounts(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusInternalServerError, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	accountID := r.PathValue("accountId")
	logRequest(r, nil)

	response, found, err := c.queries.GetAccountByID(r.Context(), accountID)
	if err != nil {
		logError(r, err, logger.Fields{"accountId": accountID})
		writeJSON(w, http.StatusInternalServerError, response)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) deleteAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	accountID := r.PathValue("accountId")
	logRequest(r, nil)

	response, err := c.accounts.DeleteAccount(r.Context(), accountID)
	if err != nil {
		logError(r, err, logger.Fields{"accountId": accountID})
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) customerHasAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	customerID := r.PathValue("customerId")
	logRequest(r, nil)

	response, err := c.queries.CustomerHasAccounts(r.Context(), customerID)
	if err != nil {
		logError(r, err, logger.Fields{"customerId": customerID})
		writeJSON(w, http.StatusInternalServerError, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) customerHasActiveAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	customerID := r.PathValue("customerId")
	logRequest(r, nil)

	response, err := c.queries.CustomerHasActiveAccounts(r.Context(), customerID)
	if err != nil {
		logError(r, err, logger.Fields{"customerId": customerID})
		writeJSON(w, http.StatusInternalServerError, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) updateBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	accountID := r.PathValue("accountId")

	var req models.UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, updated, err := c.accounts.UpdateBalance(r.Context(), accountID, req)
	if err != nil {
		logError(r, err, logger.Fields{"accountId": accountID})
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}
	if !updated {
		writeJSON(w, http.StatusNotFound, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func statusForError(err error, message string) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateAccountNumber):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrInsufficientSavingsBalance),
		errors.Is(err, domain.ErrOverdraftLimitExceeded):
		return http.StatusBadRequest
	case message == "validation failed":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
