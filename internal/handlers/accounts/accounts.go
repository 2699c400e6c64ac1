package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/retailbank/backoffice/internal/domain"
	"github.com/retailbank/backoffice/internal/dto"
	"github.com/retailbank/backoffice/internal/service/accountservice"
	"github.com/retailbank/backoffice/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, number string, kind domain.AccountKind, balance, minimumBalance float64) (*domain.Account, error)
	Open(ctx context.Context, number string) (*domain.Account, error)
	Withdraw(ctx context.Context, number string, amount float64) (*domain.Account, error)
	Deposit(ctx context.Context, number string, amount float64) (*domain.Account, error)
	Transfer(ctx context.Context, from, to string, amount float64) error
	History(ctx context.Context, number string) ([]string, error)
	ClearHistory(ctx context.Context, number string) error
	SetTransferLimit(ctx context.Context, number string, limit float64) (*domain.Account, error)
	ApplyForLoan(ctx context.Context, number string, principal, interestRate float64, startDate string, termMonths int) (*domain.Loan, error)
	MakeLoanPayment(ctx context.Context, number string, amount float64) (*domain.Loan, error)
	LoanDetails(ctx context.Context, number string) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, number string) error
}

type AccountHandler struct {
	accountService Service
	validate       *validator.Validate
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validate:       validator.New(),
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create and persist an account of the given kind with an opening balance.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterAccountRequestDTO	true	"Account registration payload"
//	@Success		201		{object}	dto.AccountResponseDTO			"Registered account"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		409		{object}	utils.Response					"Account already exists"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.accountService.Register(r.Context(), req.Number, domain.AccountKind(req.Kind), req.Balance, req.MinimumBalance)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAccountDTO(account))
}

// GetAccount godoc
//
//	@Summary		Get account details
//	@Description	Hydrate an account from its persisted row; an absent row yields documented defaults.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO	"Account state"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{number} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	account, err := h.accountService.Open(r.Context(), number)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account))
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Deposit amount"
//	@Success		200		{object}	dto.AccountResponseDTO	"Updated account"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{number}/deposit [post]
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.accountService.Deposit(r.Context(), number, req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account))
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Debit the account. Basic accounts clamp a shortfall to zero; savings accounts reject withdrawals that would breach the minimum balance.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Withdrawal amount"
//	@Success		200		{object}	dto.AccountResponseDTO	"Updated account"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		402		{object}	utils.Response			"Minimum balance must be maintained"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{number}/withdraw [post]
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.accountService.Withdraw(r.Context(), number, req.Amount)
	if err != nil {
		if errors.Is(err, accountservice.ErrBelowMinimumBalance) {
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account))
}

// Transfer godoc
//
//	@Summary		Transfer funds between accounts
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer payload"
//	@Success		200		{object}	utils.Response			"Transfer successful"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		402		{object}	utils.Response			"Insufficient funds or limit exceeded"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{number}/transfer [post]
func (h *AccountHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.accountService.Transfer(r.Context(), number, req.To, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, accountservice.ErrInsufficientFunds),
			errors.Is(err, accountservice.ErrBelowMinimumBalance),
			errors.Is(err, accountservice.ErrTransferLimitExceeded):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "transfer successful"})
}

// GetHistory godoc
//
//	@Summary		Get transaction history
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	dto.HistoryResponseDTO	"Transaction history"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{number}/history [get]
func (h *AccountHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	history, err := h.accountService.History(r.Context(), number)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HistoryResponseDTO{
		Number:  number,
		History: history,
	})
}

// ClearHistory godoc
//
//	@Summary		Clear transaction history
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	utils.Response	"History cleared"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{number}/history [delete]
func (h *AccountHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	if err := h.accountService.ClearHistory(r.Context(), number); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "history cleared"})
}

// SetTransferLimit godoc
//
//	@Summary		Change the transfer limit
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferLimitRequestDTO	true	"New transfer limit"
//	@Success		200		{object}	dto.AccountResponseDTO		"Updated account"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts/{number}/transfer-limit [put]
func (h *AccountHandler) SetTransferLimit(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.TransferLimitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.accountService.SetTransferLimit(r.Context(), number, req.Limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account))
}

// ApplyForLoan godoc
//
//	@Summary		Apply for a loan
//	@Description	Attach a new loan to the account. At most one loan may be active; re-application is rejected.
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoanRequestDTO	true	"Loan application payload"
//	@Success		201		{object}	dto.LoanResponseDTO	"Attached loan"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		409		{object}	utils.Response		"Account already has an active loan"
//	@Failure		422		{object}	utils.Response		"Invalid start date"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/accounts/{number}/loan [post]
func (h *AccountHandler) ApplyForLoan(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.LoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := h.accountService.ApplyForLoan(r.Context(), number, req.Principal, req.InterestRate, req.StartDate, req.TermMonths)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrLoanExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountservice.ErrInvalidStartDate):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toLoanDTO(loan))
}

// MakeLoanPayment godoc
//
//	@Summary		Make a loan payment
//	@Tags			Loans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Payment amount"
//	@Success		200		{object}	dto.LoanResponseDTO		"Updated loan"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		404		{object}	utils.Response			"No active loan for this account"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{number}/loan/payment [post]
func (h *AccountHandler) MakeLoanPayment(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := h.accountService.MakeLoanPayment(r.Context(), number, req.Amount)
	if err != nil {
		if errors.Is(err, accountservice.ErrNoActiveLoan) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLoanDTO(loan))
}

// GetLoan godoc
//
//	@Summary		Get loan details
//	@Tags			Loans
//	@Produce		json
//	@Success		200	{object}	dto.LoanResponseDTO	"Attached loan"
//	@Failure		404	{object}	utils.Response		"No active loan for this account"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/accounts/{number}/loan [get]
func (h *AccountHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	loan, err := h.accountService.LoanDetails(r.Context(), number)
	if err != nil {
		if errors.Is(err, accountservice.ErrNoActiveLoan) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLoanDTO(loan))
}

// DeleteLoan godoc
//
//	@Summary		Delete the attached loan
//	@Tags			Loans
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Loan deleted"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{number}/loan [delete]
func (h *AccountHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	if err := h.accountService.DeleteLoan(r.Context(), number); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "loan deleted"})
}

func toAccountDTO(account *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		Number:         account.Number,
		Kind:           string(account.Kind),
		Balance:        account.Balance,
		TransferLimit:  account.TransferLimit,
		MinimumBalance: account.MinimumBalance,
		HasLoan:        account.Loan != nil,
	}
}

func toLoanDTO(loan *domain.Loan) dto.LoanResponseDTO {
	return dto.LoanResponseDTO{
		ID:                 loan.ID,
		Principal:          loan.Principal,
		InterestRate:       loan.InterestRate,
		StartDate:          loan.StartDate.Format("2006-01-02"),
		TermMonths:         loan.TermMonths,
		MonthlyInstallment: loan.MonthlyInstallment(),
		RepaymentRemaining: loan.Outstanding,
		Details:            loan.Details(),
	}
}
