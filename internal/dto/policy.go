package dto

type CreatePolicyRequestDTO struct {
	Type         string `json:"type" validate:"required,oneof=LIFE HEALTH ACCIDENT" example:"LIFE"`
	StartDate    string `json:"start_date" validate:"required" example:"2024-01-01"`
	Coverage     string `json:"coverage" validate:"required,oneof=BASIC STANDARD PREMIUM" example:"STANDARD"`
	TenureYears  int    `json:"tenure_years" validate:"required,oneof=5 10 15 20" example:"5"`
	Frequency    string `json:"frequency" validate:"required,oneof=MONTHLY QUARTERLY SEMI_ANNUALLY ANNUALLY" example:"MONTHLY"`
	Age          int    `json:"age" validate:"required,gt=0,lte=120" example:"30"`
	Smoker       bool   `json:"smoker" example:"true"`
	PastInjuries bool   `json:"past_injuries" example:"false"`
}

type PremiumBreakdownDTO struct {
	BasePremium             float64 `json:"base_premium" example:"2800"`
	PremiumPerPeriod        float64 `json:"premium_per_period" example:"2800"`
	TotalPeriods            int     `json:"total_periods" example:"5"`
	TotalPremium            float64 `json:"total_premium" example:"14000"`
	GST                     float64 `json:"gst" example:"1260"`
	TotalPremiumWithGST     float64 `json:"total_premium_with_gst" example:"15260"`
	GSTPerPeriod            float64 `json:"gst_per_period" example:"252"`
	PremiumPerPeriodWithGST float64 `json:"premium_per_period_with_gst" example:"3052"`
}

type PolicyResponseDTO struct {
	Number    string              `json:"number" example:"9f0c6f3a-0b45-4a8e-8f5e-0f0cde1a2b3c"`
	Type      string              `json:"type" example:"LIFE"`
	StartDate string              `json:"start_date" example:"2024-01-01"`
	EndDate   string              `json:"end_date" example:"2029-01-01"`
	Coverage  string              `json:"coverage" example:"STANDARD"`
	Tenure    int                 `json:"tenure_years" example:"5"`
	Frequency string              `json:"frequency" example:"MONTHLY"`
	Age       int                 `json:"age" example:"30"`
	Active    bool                `json:"active" example:"true"`
	Premium   PremiumBreakdownDTO `json:"premium"`
	Details   string              `json:"details"`
}

type QuoteResponseDTO struct {
	Premium PremiumBreakdownDTO `json:"premium"`
}
