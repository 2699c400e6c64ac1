package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	accounthandlers "github.com/retailbank/backoffice/internal/handlers/accounts"
	policyhandlers "github.com/retailbank/backoffice/internal/handlers/policies"
	"github.com/retailbank/backoffice/internal/service"
)

type AccountHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ClearHistory(w http.ResponseWriter, r *http.Request)
	SetTransferLimit(w http.ResponseWriter, r *http.Request)
	ApplyForLoan(w http.ResponseWriter, r *http.Request)
	MakeLoanPayment(w http.ResponseWriter, r *http.Request)
	GetLoan(w http.ResponseWriter, r *http.Request)
	DeleteLoan(w http.ResponseWriter, r *http.Request)
}

type PolicyHandler interface {
	CreatePolicy(w http.ResponseWriter, r *http.Request)
	Quote(w http.ResponseWriter, r *http.Request)
	GetPolicy(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler AccountHandler
	PolicyHandler  PolicyHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AccountHandler: accounthandlers.New(s.AccountService),
		PolicyHandler:  policyhandlers.New(s.PolicyService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.AccountHandler.Register)
			r.Route("/{number}", func(r chi.Router) {
				r.Get("/", h.AccountHandler.GetAccount)
				r.Post("/deposit", h.AccountHandler.Deposit)
				r.Post("/withdraw", h.AccountHandler.Withdraw)
				r.Post("/transfer", h.AccountHandler.Transfer)
				r.Get("/history", h.AccountHandler.GetHistory)
				r.Delete("/history", h.AccountHandler.ClearHistory)
				r.Put("/transfer-limit", h.AccountHandler.SetTransferLimit)
				r.Route("/loan", func(r chi.Router) {
					r.Post("/", h.AccountHandler.ApplyForLoan)
					r.Get("/", h.AccountHandler.GetLoan)
					r.Delete("/", h.AccountHandler.DeleteLoan)
					r.Post("/payment", h.AccountHandler.MakeLoanPayment)
				})
			})
		})
		r.Route("/policies", func(r chi.Router) {
			r.Post("/", h.PolicyHandler.CreatePolicy)
			r.Post("/quote", h.PolicyHandler.Quote)
			r.Get("/{number}", h.PolicyHandler.GetPolicy)
		})
	})

	return r
}
