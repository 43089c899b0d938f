package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/corebank/accounts-service/internal/adapter/http/models"
	"github.com/corebank/accounts-service/internal/commons"
	"github.com/corebank/accounts-service/internal/logger"
	"github.com/corebank/accounts-service/internal/usecase/service_interfaces"
)

type TransactionController struct {
	transactions service_interfaces.TransactionService
}

func NewTransactionController(transactions service_interfaces.TransactionService) *TransactionController {
	return &TransactionController{transactions: transactions}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.HandleFunc("PUT /accounts/{accountId}/deposit", c.deposit)
	mux.HandleFunc("PUT /accounts/{accountId}/withdrawal", c.withdraw)
}

func (c *TransactionController) deposit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	accountID := r.PathValue("accountId")

	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.transactions.Deposit(r.Context(), accountID, req)
	if err != nil {
		logError(r, err, logger.Fields{"accountId": accountID})
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *TransactionController) withdraw(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	accountID := r.PathValue("accountId")

	var req models.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.transactions.Withdraw(r.Context(), accountID, req)
	if err != nil {
		logError(r, err, logger.Fields{"accountId": accountID})
		writeJSON(w, statusForError(err, response.Message), response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}
