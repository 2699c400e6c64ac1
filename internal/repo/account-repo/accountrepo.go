// Package accountrepo maps accounts onto the Accounts.csv table.
//
// Canonical row schema (v2), symmetric between read and write:
//
//	number,balance(2dp),debt(2dp reserved),transferLimit(2dp),kind,minimumBalance(2dp)[,history...]
//
// The debt column is a reserved legacy slot: always written as "0.00" and
// skipped on read.
package accountrepo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/retailbank/backoffice/internal/domain"
	"go.uber.org/zap"
)

const (
	Table = "Accounts.csv"

	reservedDebt = "0.00"
	// fixed columns before the variable-length history tail
	fieldCount = 6
)

type Store interface {
	GetRecord(ctx context.Context, table, key string) (string, bool, error)
	UpdateRecord(ctx context.Context, table, key, row string) error
}

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{store: store}
}

// Get returns the persisted account for number, or nil when no row exists.
func (r *Repository) Get(ctx context.Context, number string) (*domain.Account, error) {
	row, ok, err := r.store.GetRecord(ctx, Table, number)
	if err != nil {
		zap.L().Error("failed to read account row", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	account, err := decodeRow(row)
	if err != nil {
		zap.L().Error("failed to decode account row", zap.String("number", number), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Save writes the full account state back to its row.
func (r *Repository) Save(ctx context.Context, account *domain.Account) error {
	if err := r.store.UpdateRecord(ctx, Table, account.Number, EncodeRow(account)); err != nil {
		zap.L().Error("failed to persist account row", zap.String("number", account.Number), zap.Error(err))
		return err
	}
	return nil
}

// EncodeRow serializes an account into its canonical row. The attached loan
// is persisted separately in the Loans table.
func EncodeRow(account *domain.Account) string {
	fields := []string{
		account.Number,
		fmt.Sprintf("%.2f", account.Balance),
		reservedDebt,
		fmt.Sprintf("%.2f", account.TransferLimit),
		string(account.Kind),
		fmt.Sprintf("%.2f", account.MinimumBalance),
	}
	fields = append(fields, account.History...)
	return strings.Join(fields, ",")
}

func decodeRow(row string) (*domain.Account, error) {
	fields := strings.Split(row, ",")
	if len(fields) < fieldCount {
		return nil, fmt.Errorf("malformed account row: %d fields", len(fields))
	}
	balance, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed balance field: %w", err)
	}
	// fields[2] is the reserved debt slot
	limit, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed transfer limit field: %w", err)
	}
	minBalance, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed minimum balance field: %w", err)
	}
	account := &domain.Account{
		Number:         fields[0],
		Kind:           domain.AccountKind(fields[4]),
		Balance:        balance,
		TransferLimit:  limit,
		MinimumBalance: minBalance,
		History:        []string{},
	}
	if len(fields) > fieldCount {
		account.History = append(account.History, fields[fieldCount:]...)
	}
	return account, nil
}
