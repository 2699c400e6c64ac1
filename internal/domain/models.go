package domain

// AccountKind selects the withdrawal policy applied to an account.
type AccountKind string

const (
	KindBasic   AccountKind = "BASIC"
	KindSavings AccountKind = "SAVINGS"
)

// DefaultTransferLimit is applied to accounts created without an explicit
// limit and to accounts hydrated from an absent row.
const DefaultTransferLimit = 1000.00

type Account struct {
	Number         string      `json:"number"`
	Kind           AccountKind `json:"kind"`
	Balance        float64     `json:"balance"`
	TransferLimit  float64     `json:"transfer_limit"`
	MinimumBalance float64     `json:"minimum_balance"`
	History        []string    `json:"history"`
	Loan           *Loan       `json:"loan,omitempty"`
}

// NewAccount builds an in-memory account with default transfer limit and
// empty history. It performs no store interaction.
func NewAccount(number string, balance float64) *Account {
	return &Account{
		Number:        number,
		Kind:          KindBasic,
		Balance:       balance,
		TransferLimit: DefaultTransferLimit,
		History:       []string{},
	}
}

// AppendHistory records a human-readable transaction description. Entries are
// append-only and chronological.
func (a *Account) AppendHistory(entry string) {
	a.History = append(a.History, entry)
}

// HistorySnapshot returns a copy of the transaction history so callers cannot
// mutate the backing slice.
func (a *Account) HistorySnapshot() []string {
	snapshot := make([]string, len(a.History))
	copy(snapshot, a.History)
	return snapshot
}
