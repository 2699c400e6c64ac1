// Package accountservice owns the account ledger: balance mutation,
// transaction history, transfer-limit policy and loan attachment. Every
// mutating operation follows a mutate-then-flush contract: the full account
// state is written back to the record store before the call returns.
package accountservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retailbank/backoffice/internal/domain"
	"go.uber.org/zap"
)

type AccountRepo interface {
	Get(ctx context.Context, number string) (*domain.Account, error)
	Save(ctx context.Context, account *domain.Account) error
}

type LoanRepo interface {
	Get(ctx context.Context, accountNumber string) (*domain.Loan, error)
	Save(ctx context.Context, accountNumber string, loan *domain.Loan) error
	Delete(ctx context.Context, accountNumber string) error
}

type Service struct {
	accountRepo AccountRepo
	loanRepo    LoanRepo
}

func New(accountRepo AccountRepo, loanRepo LoanRepo) *Service {
	return &Service{
		accountRepo: accountRepo,
		loanRepo:    loanRepo,
	}
}

var (
	ErrAccountExists         = errors.New("account already exists")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrBelowMinimumBalance   = errors.New("cannot withdraw, minimum balance must be maintained")
	ErrTransferLimitExceeded = errors.New("amount exceeds transfer limit")
	ErrLoanExists            = errors.New("account already has an active loan")
	ErrNoActiveLoan          = errors.New("no active loan for this account")
	ErrInvalidStartDate      = errors.New("invalid date format, use yyyy-mm-dd")
)

const loanDateLayout = "2006-01-02"

func parseLoanDate(value string) (time.Time, error) {
	start, err := time.Parse(loanDateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidStartDate
	}
	return start, nil
}

// Register creates and persists a new account. Re-registering an existing
// account number is rejected.
func (s *Service) Register(ctx context.Context, number string, kind domain.AccountKind, balance, minimumBalance float64) (*domain.Account, error) {
	existing, err := s.accountRepo.Get(ctx, number)
	if err != nil {
		zap.L().Error("failed to check existing account", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	account := domain.NewAccount(number, balance)
	account.Kind = kind
	if kind == domain.KindSavings {
		account.MinimumBalance = minimumBalance
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		zap.L().Error("failed to persist new account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Open hydrates an account from its persisted row. An absent row yields the
// documented defaults (zero balance, default transfer limit, empty history)
// without creating the row. The attached loan, if any, is loaded alongside.
func (s *Service) Open(ctx context.Context, number string) (*domain.Account, error) {
	account, err := s.accountRepo.Get(ctx, number)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		account = domain.NewAccount(number, 0)
	}
	loan, err := s.loanRepo.Get(ctx, number)
	if err != nil {
		zap.L().Error("failed to get loan", zap.Error(err))
		return nil, err
	}
	account.Loan = loan
	return account, nil
}

// Withdraw debits the account. For basic accounts a shortfall does not fail:
// the balance clamps to zero and the shortfall is reported as one that would
// require a loan. For savings accounts the withdrawal is rejected outright
// when the resulting balance would fall below the minimum; the rejection
// leaves no trace in history and triggers no write.
func (s *Service) Withdraw(ctx context.Context, number string, amount float64) (*domain.Account, error) {
	account, err := s.Open(ctx, number)
	if err != nil {
		return nil, err
	}

	if account.Kind == domain.KindSavings && account.Balance-amount < account.MinimumBalance {
		return nil, ErrBelowMinimumBalance
	}

	if account.Balance-amount < 0 {
		zap.L().Warn("withdrawal exceeds balance, shortfall would require a loan",
			zap.String("number", number),
			zap.Float64("balance", account.Balance),
			zap.Float64("amount", amount),
		)
		account.Balance = 0
	} else {
		account.Balance -= amount
	}
	account.AppendHistory(fmt.Sprintf("Withdrawn: $%.2f", amount))

	if err := s.accountRepo.Save(ctx, account); err != nil {
		zap.L().Error("failed to persist withdrawal", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Deposit credits the account unconditionally and persists.
func (s *Service) Deposit(ctx context.Context, number string, amount float64) (*domain.Account, error) {
	account, err := s.Open(ctx, number)
	if err != nil {
		return nil, err
	}
	account.Balance += amount
	account.AppendHistory(fmt.Sprintf("Deposited: $%.2f", amount))

	if err := s.accountRepo.Save(ctx, account); err != nil {
		zap.L().Error("failed to persist deposit", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Transfer moves funds between two existing accounts, honoring the source
// account's transfer limit and withdrawal policy. The two row writes are not
// atomic with respect to each other.
func (s *Service) Transfer(ctx context.Context, from, to string, amount float64) error {
	source, err := s.accountRepo.Get(ctx, from)
	if err != nil {
		zap.L().Error("failed to get source account", zap.Error(err))
		return err
	}
	if source == nil {
		return ErrAccountNotFound
	}
	target, err := s.accountRepo.Get(ctx, to)
	if err != nil {
		zap.L().Error("failed to get target account", zap.Error(err))
		return err
	}
	if target == nil {
		return ErrAccountNotFound
	}

	if amount > source.TransferLimit {
		return ErrTransferLimitExceeded
	}
	if source.Balance < amount {
		return ErrInsufficientFunds
	}
	if source.Kind == domain.KindSavings && source.Balance-amount < source.MinimumBalance {
		return ErrBelowMinimumBalance
	}

	source.Balance -= amount
	source.AppendHistory(fmt.Sprintf("Transferred to %s: $%.2f", to, amount))
	target.Balance += amount
	target.AppendHistory(fmt.Sprintf("Received from %s: $%.2f", from, amount))

	if err := s.accountRepo.Save(ctx, source); err != nil {
		zap.L().Error("failed to persist source account", zap.Error(err))
		return err
	}
	if err := s.accountRepo.Save(ctx, target); err != nil {
		zap.L().Error("failed to persist target account", zap.Error(err))
		return err
	}
	return nil
}

// History returns a snapshot of the account's transaction history.
func (s *Service) History(ctx context.Context, number string) ([]string, error) {
	account, err := s.Open(ctx, number)
	if err != nil {
		return nil, err
	}
	return account.HistorySnapshot(), nil
}

// AddHistory appends a single entry and persists.
func (s *Service) AddHistory(ctx context.Context, number, entry string) error {
	account, err := s.Open(ctx, number)
	if err != nil {
		return err
	}
	account.AppendHistory(entry)
	if err := s.accountRepo.Save(ctx, account); err != nil {
		zap.L().Error("failed to persist history entry", zap.Error(err))
		return err
	}
	return nil
}

// ClearHistory empties the transaction history and persists, matching the
// mutate-then-flush contract of every other mutator.
func (s *Service) ClearHistory(ctx context.Context, number string) error {
	account, err := s.Open(ctx, number)
	if err != nil {
		return err
	}
	account.History = []string{}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		zap.L().Error("failed to persist cleared history", zap.Error(err))
		return err
	}
	return nil
}

// SetTransferLimit changes the informational transfer ceiling and persists.
func (s *Service) SetTransferLimit(ctx context.Context, number string, limit float64) (*domain.Account, error) {
	account, err := s.Open(ctx, number)
	if err != nil {
		return nil, err
	}
	account.TransferLimit = limit
	if err := s.accountRepo.Save(ctx, account); err != nil {
		zap.L().Error("failed to persist transfer limit", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// ApplyForLoan attaches a new loan to the account. An account holds at most
// one active loan; re-application while one exists is rejected rather than
// silently replacing it.
func (s *Service) ApplyForLoan(ctx context.Context, number string, principal, interestRate float64, startDate string, termMonths int) (*domain.Loan, error) {
	account, err := s.Open(ctx, number)
	if err != nil {
		return nil, err
	}
	if account.Loan != nil {
		return nil, ErrLoanExists
	}

	start, err := parseLoanDate(startDate)
	if err != nil {
		return nil, err
	}
	loan := domain.NewLoan(principal, interestRate, start, termMonths)
	account.Loan = loan
	account.AppendHistory(fmt.Sprintf("Applied for Loan: $%.2f", principal))

	if err := s.loanRepo.Save(ctx, number, loan); err != nil {
		zap.L().Error("failed to persist loan", zap.Error(err))
		return nil, err
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		zap.L().Error("failed to persist account after loan application", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

// MakeLoanPayment pays down the attached loan. An absent loan is reported via
// ErrNoActiveLoan; the account is left untouched and nothing is written.
func (s *Service) MakeLoanPayment(ctx context.Context, number string, amount float64) (*domain.Loan, error) {
	account, err := s.Open(ctx, number)
	if err != nil {
		return nil, err
	}
	if account.Loan == nil {
		return nil, ErrNoActiveLoan
	}

	account.Loan.Pay(amount)
	account.AppendHistory(fmt.Sprintf("Loan Payment: $%.2f", amount))

	if err := s.loanRepo.Save(ctx, number, account.Loan); err != nil {
		zap.L().Error("failed to persist loan payment", zap.Error(err))
		return nil, err
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		zap.L().Error("failed to persist account after loan payment", zap.Error(err))
		return nil, err
	}
	return account.Loan, nil
}

// LoanDetails returns the attached loan, or ErrNoActiveLoan when none exists.
func (s *Service) LoanDetails(ctx context.Context, number string) (*domain.Loan, error) {
	loan, err := s.loanRepo.Get(ctx, number)
	if err != nil {
		zap.L().Error("failed to get loan", zap.Error(err))
		return nil, err
	}
	if loan == nil {
		return nil, ErrNoActiveLoan
	}
	return loan, nil
}

// DeleteLoan detaches and removes the loan. Deleting an absent loan is a
// no-op.
func (s *Service) DeleteLoan(ctx context.Context, number string) error {
	if err := s.loanRepo.Delete(ctx, number); err != nil {
		zap.L().Error("failed to delete loan", zap.Error(err))
		return err
	}
	return nil
}
