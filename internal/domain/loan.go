package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Loan is a simple-interest loan attached to an account. Total repayment is
// fixed at construction; payments only reduce the outstanding amount.
type Loan struct {
	ID           string    `json:"id"`
	Principal    float64   `json:"principal"`
	InterestRate float64   `json:"interest_rate"`
	StartDate    time.Time `json:"start_date"`
	TermMonths   int       `json:"term_months"`
	Outstanding  float64   `json:"outstanding"`
}

// NewLoan computes the total repayment as
// principal * (1 + rate/100 * termMonths/12).
func NewLoan(principal, interestRate float64, startDate time.Time, termMonths int) *Loan {
	total := principal * (1 + interestRate/100*float64(termMonths)/12)
	return &Loan{
		ID:           uuid.NewString(),
		Principal:    principal,
		InterestRate: interestRate,
		StartDate:    startDate,
		TermMonths:   termMonths,
		Outstanding:  total,
	}
}

// MonthlyInstallment spreads the total repayment evenly across the term.
func (l *Loan) MonthlyInstallment() float64 {
	if l.TermMonths == 0 {
		return 0
	}
	total := l.Principal * (1 + l.InterestRate/100*float64(l.TermMonths)/12)
	return total / float64(l.TermMonths)
}

// Pay reduces the outstanding repayment, clamping at zero.
func (l *Loan) Pay(amount float64) {
	l.Outstanding -= amount
	if l.Outstanding < 0 {
		l.Outstanding = 0
	}
}

// Details renders a human-readable summary of the loan.
func (l *Loan) Details() string {
	var sb strings.Builder
	sb.WriteString("Loan Details:\n")
	fmt.Fprintf(&sb, "Loan ID: %s\n", l.ID)
	fmt.Fprintf(&sb, "Principal: $%.2f\n", l.Principal)
	fmt.Fprintf(&sb, "Interest Rate: %.2f%%\n", l.InterestRate)
	fmt.Fprintf(&sb, "Start Date: %s\n", l.StartDate.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Term: %d months\n", l.TermMonths)
	fmt.Fprintf(&sb, "Monthly Installment: $%.2f\n", l.MonthlyInstallment())
	fmt.Fprintf(&sb, "Repayment Remaining: $%.2f\n", l.Outstanding)
	return sb.String()
}
