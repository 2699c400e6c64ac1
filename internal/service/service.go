package service

import (
	"github.com/retailbank/backoffice/internal/handlers/accounts"
	"github.com/retailbank/backoffice/internal/handlers/policies"

	"github.com/retailbank/backoffice/internal/repo"
	"github.com/retailbank/backoffice/internal/service/accountservice"
	"github.com/retailbank/backoffice/internal/service/policyservice"
)

type Services struct {
	AccountService accounts.Service
	PolicyService  policies.Service
	PolicyRegistry *policyservice.Service
}

func New(repo *repo.Repositories) *Services {
	accountService := accountservice.New(repo.AccountRepo, repo.LoanRepo)
	policyService := policyservice.New()

	return &Services{
		AccountService: accountService,
		PolicyService:  policyService,
		PolicyRegistry: policyService,
	}
}
