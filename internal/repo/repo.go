package repo

import (
	"github.com/retailbank/backoffice/internal/flatfile"
	accountrepo "github.com/retailbank/backoffice/internal/repo/account-repo"
	loanrepo "github.com/retailbank/backoffice/internal/repo/loan-repo"
	"github.com/retailbank/backoffice/internal/service/accountservice"
)

type Repositories struct {
	AccountRepo accountservice.AccountRepo
	LoanRepo    accountservice.LoanRepo
}

func New(store *flatfile.Store) *Repositories {
	return &Repositories{
		AccountRepo: accountrepo.New(store),
		LoanRepo:    loanrepo.New(store),
	}
}
