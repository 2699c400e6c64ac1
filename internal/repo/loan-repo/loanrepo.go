// Package loanrepo maps attached loans onto the Loans.csv table, keyed by the
// owning account number:
//
//	accountNumber,loanID,principal(2dp),interestRate(2dp),startDate(yyyy-mm-dd),termMonths,outstanding(2dp)
package loanrepo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/retailbank/backoffice/internal/domain"
	"go.uber.org/zap"
)

const (
	Table = "Loans.csv"

	dateLayout = "2006-01-02"
	fieldCount = 7
)

type Store interface {
	GetRecord(ctx context.Context, table, key string) (string, bool, error)
	UpdateRecord(ctx context.Context, table, key, row string) error
	DeleteRecord(ctx context.Context, table, key string) error
}

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{store: store}
}

// Get returns the loan attached to the account, or nil when none exists.
func (r *Repository) Get(ctx context.Context, accountNumber string) (*domain.Loan, error) {
	row, ok, err := r.store.GetRecord(ctx, Table, accountNumber)
	if err != nil {
		zap.L().Error("failed to read loan row", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	loan, err := decodeRow(row)
	if err != nil {
		zap.L().Error("failed to decode loan row", zap.String("account", accountNumber), zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) Save(ctx context.Context, accountNumber string, loan *domain.Loan) error {
	if err := r.store.UpdateRecord(ctx, Table, accountNumber, encodeRow(accountNumber, loan)); err != nil {
		zap.L().Error("failed to persist loan row", zap.String("account", accountNumber), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, accountNumber string) error {
	if err := r.store.DeleteRecord(ctx, Table, accountNumber); err != nil {
		zap.L().Error("failed to delete loan row", zap.String("account", accountNumber), zap.Error(err))
		return err
	}
	return nil
}

func encodeRow(accountNumber string, loan *domain.Loan) string {
	return strings.Join([]string{
		accountNumber,
		loan.ID,
		fmt.Sprintf("%.2f", loan.Principal),
		fmt.Sprintf("%.2f", loan.InterestRate),
		loan.StartDate.Format(dateLayout),
		strconv.Itoa(loan.TermMonths),
		fmt.Sprintf("%.2f", loan.Outstanding),
	}, ",")
}

func decodeRow(row string) (*domain.Loan, error) {
	fields := strings.Split(row, ",")
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("malformed loan row: %d fields", len(fields))
	}
	principal, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed principal field: %w", err)
	}
	rate, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed interest rate field: %w", err)
	}
	startDate, err := time.Parse(dateLayout, fields[4])
	if err != nil {
		return nil, fmt.Errorf("malformed start date field: %w", err)
	}
	termMonths, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("malformed term field: %w", err)
	}
	outstanding, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed outstanding field: %w", err)
	}
	return &domain.Loan{
		ID:           fields[1],
		Principal:    principal,
		InterestRate: rate,
		StartDate:    startDate,
		TermMonths:   termMonths,
		Outstanding:  outstanding,
	}, nil
}
