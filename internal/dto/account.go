package dto

type RegisterAccountRequestDTO struct {
	Number         string  `json:"number" validate:"required" example:"A1"`
	Kind           string  `json:"kind" validate:"required,oneof=BASIC SAVINGS" example:"SAVINGS"`
	Balance        float64 `json:"balance" validate:"gte=0" example:"100"`
	MinimumBalance float64 `json:"minimum_balance" validate:"gte=0" example:"50"`
}

type AmountRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"25.5"`
}

type TransferRequestDTO struct {
	To     string  `json:"to" validate:"required" example:"A2"`
	Amount float64 `json:"amount" validate:"required,gt=0" example:"200"`
}

type TransferLimitRequestDTO struct {
	Limit float64 `json:"limit" validate:"required,gt=0" example:"2000"`
}

type LoanRequestDTO struct {
	Principal    float64 `json:"principal" validate:"required,gt=0" example:"5000"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0" example:"4.5"`
	StartDate    string  `json:"start_date" validate:"required" example:"2024-01-01"`
	TermMonths   int     `json:"term_months" validate:"required,gt=0" example:"24"`
}

type AccountResponseDTO struct {
	Number         string  `json:"number" example:"A1"`
	Kind           string  `json:"kind" example:"BASIC"`
	Balance        float64 `json:"balance" example:"100"`
	TransferLimit  float64 `json:"transfer_limit" example:"1000"`
	MinimumBalance float64 `json:"minimum_balance,omitempty" example:"50"`
	HasLoan        bool    `json:"has_loan" example:"false"`
}

type HistoryResponseDTO struct {
	Number  string   `json:"number" example:"A1"`
	History []string `json:"history"`
}

type LoanResponseDTO struct {
	ID                 string  `json:"id" example:"9f0c6f3a-0b45-4a8e-8f5e-0f0cde1a2b3c"`
	Principal          float64 `json:"principal" example:"5000"`
	InterestRate       float64 `json:"interest_rate" example:"4.5"`
	StartDate          string  `json:"start_date" example:"2024-01-01"`
	TermMonths         int     `json:"term_months" example:"24"`
	MonthlyInstallment float64 `json:"monthly_installment" example:"245.83"`
	RepaymentRemaining float64 `json:"repayment_remaining" example:"5900"`
	Details            string  `json:"details"`
}
