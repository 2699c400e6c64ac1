package policyservice

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStartDate   = errors.New("invalid date format, use yyyy-mm-dd")
	ErrPremiumCalculation = errors.New("error calculating premiums")
)

const (
	dateLayout = "2006-01-02"
	gstRate    = 0.09
)

type PolicyType string

const (
	PolicyLife     PolicyType = "LIFE"
	PolicyHealth   PolicyType = "HEALTH"
	PolicyAccident PolicyType = "ACCIDENT"
)

// CoverageOption is the base coverage value in currency units.
type CoverageOption int

const (
	CoverageBasic    CoverageOption = 1000
	CoverageStandard CoverageOption = 2000
	CoveragePremium  CoverageOption = 3000
)

func (c CoverageOption) Value() float64 { return float64(c) }

func (c CoverageOption) String() string {
	switch c {
	case CoverageBasic:
		return "BASIC"
	case CoverageStandard:
		return "STANDARD"
	case CoveragePremium:
		return "PREMIUM"
	}
	return fmt.Sprintf("CoverageOption(%d)", int(c))
}

func ParseCoverageOption(name string) (CoverageOption, error) {
	switch name {
	case "BASIC":
		return CoverageBasic, nil
	case "STANDARD":
		return CoverageStandard, nil
	case "PREMIUM":
		return CoveragePremium, nil
	}
	return 0, fmt.Errorf("unknown coverage option: %s", name)
}

// PolicyTenure is the policy duration in years.
type PolicyTenure int

const (
	TenureFiveYears    PolicyTenure = 5
	TenureTenYears     PolicyTenure = 10
	TenureFifteenYears PolicyTenure = 15
	TenureTwentyYears  PolicyTenure = 20
)

func (t PolicyTenure) Years() int { return int(t) }

func ParsePolicyTenure(years int) (PolicyTenure, error) {
	switch tenure := PolicyTenure(years); tenure {
	case TenureFiveYears, TenureTenYears, TenureFifteenYears, TenureTwentyYears:
		return tenure, nil
	}
	return 0, fmt.Errorf("unknown policy tenure: %d years", years)
}

// PremiumFrequency is the number of months in one payment period.
type PremiumFrequency int

const (
	FrequencyMonthly      PremiumFrequency = 1
	FrequencyQuarterly    PremiumFrequency = 3
	FrequencySemiAnnually PremiumFrequency = 6
	FrequencyAnnually     PremiumFrequency = 12
)

func (f PremiumFrequency) Months() int { return int(f) }

func (f PremiumFrequency) String() string {
	switch f {
	case FrequencyMonthly:
		return "MONTHLY"
	case FrequencyQuarterly:
		return "QUARTERLY"
	case FrequencySemiAnnually:
		return "SEMI_ANNUALLY"
	case FrequencyAnnually:
		return "ANNUALLY"
	}
	return fmt.Sprintf("PremiumFrequency(%d)", int(f))
}

func ParsePremiumFrequency(name string) (PremiumFrequency, error) {
	switch name {
	case "MONTHLY":
		return FrequencyMonthly, nil
	case "QUARTERLY":
		return FrequencyQuarterly, nil
	case "SEMI_ANNUALLY":
		return FrequencySemiAnnually, nil
	case "ANNUALLY":
		return FrequencyAnnually, nil
	}
	return 0, fmt.Errorf("unknown premium frequency: %s", name)
}

// RiskProfile is the per-variant risk modifier. Each policy type supplies its
// own label and flat surcharge; the report rendering calls it uniformly.
type RiskProfile interface {
	SurchargeLabel() string
	SurchargeAmount() float64
}

type SmokerRisk struct {
	Smoker bool
}

func (r SmokerRisk) SurchargeLabel() string { return "Smoker Price" }

func (r SmokerRisk) SurchargeAmount() float64 {
	if r.Smoker {
		return 500
	}
	return 0
}

type InjuryRisk struct {
	PastInjuries bool
}

func (r InjuryRisk) SurchargeLabel() string { return "Injuries Price" }

func (r InjuryRisk) SurchargeAmount() float64 {
	if r.PastInjuries {
		return 1000
	}
	return 0
}

// Policy is an immutable, value-like insurance policy. Its only state
// transition is driven by the passage of time between the start and end
// dates.
type Policy struct {
	Number    string
	Type      PolicyType
	StartDate time.Time
	EndDate   time.Time
	Coverage  CoverageOption
	Tenure    PolicyTenure
	Frequency PremiumFrequency
	Age       int
	Risk      RiskProfile
}

func NewLifePolicy(startDate string, coverage CoverageOption, tenure PolicyTenure, frequency PremiumFrequency, age int, smoker bool) (*Policy, error) {
	return newPolicy(PolicyLife, startDate, coverage, tenure, frequency, age, SmokerRisk{Smoker: smoker})
}

func NewHealthPolicy(startDate string, coverage CoverageOption, tenure PolicyTenure, frequency PremiumFrequency, age int, smoker bool) (*Policy, error) {
	return newPolicy(PolicyHealth, startDate, coverage, tenure, frequency, age, SmokerRisk{Smoker: smoker})
}

func NewAccidentPolicy(startDate string, coverage CoverageOption, tenure PolicyTenure, frequency PremiumFrequency, age int, pastInjuries bool) (*Policy, error) {
	return newPolicy(PolicyAccident, startDate, coverage, tenure, frequency, age, InjuryRisk{PastInjuries: pastInjuries})
}

func newPolicy(policyType PolicyType, startDate string, coverage CoverageOption, tenure PolicyTenure, frequency PremiumFrequency, age int, risk RiskProfile) (*Policy, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidStartDate
	}
	return &Policy{
		Number:    uuid.NewString(),
		Type:      policyType,
		StartDate: start,
		EndDate:   start.AddDate(tenure.Years(), 0, 0),
		Coverage:  coverage,
		Tenure:    tenure,
		Frequency: frequency,
		Age:       age,
		Risk:      risk,
	}, nil
}

// Active reports whether now falls strictly between the start and end dates,
// exclusive on both ends.
func (p *Policy) Active(now time.Time) bool {
	return now.After(p.StartDate) && now.Before(p.EndDate)
}

// AgeSurcharge is the per-year-of-age premium addition.
func (p *Policy) AgeSurcharge() float64 {
	return float64(p.Age) * 10
}

// BasePremium is the coverage value plus the age and risk surcharges.
func (p *Policy) BasePremium() float64 {
	return p.Coverage.Value() + p.AgeSurcharge() + p.Risk.SurchargeAmount()
}

// Breakdown holds the named figures derived from the base premium.
type Breakdown struct {
	BasePremium             float64 `json:"base_premium"`
	PremiumPerPeriod        float64 `json:"premium_per_period"`
	TotalPeriods            int     `json:"total_periods"`
	TotalPremium            float64 `json:"total_premium"`
	GST                     float64 `json:"gst"`
	TotalPremiumWithGST     float64 `json:"total_premium_with_gst"`
	GSTPerPeriod            float64 `json:"gst_per_period"`
	PremiumPerPeriodWithGST float64 `json:"premium_per_period_with_gst"`
}

// CalculatePremium derives the full premium breakdown. The computation is
// pure: identical inputs always produce identical figures.
func (p *Policy) CalculatePremium() (*Breakdown, error) {
	basePremium := p.BasePremium()
	premiumPerPeriod := basePremium / float64(p.Frequency.Months())

	// TODO: confirm with the product owners whether totalPeriods should be a
	// true period count (60 for a monthly five-year policy) instead of
	// months-per-period times tenure years; billing figures change if so.
	totalPeriods := p.Frequency.Months() * p.Tenure.Years()
	if totalPeriods <= 0 {
		return nil, fmt.Errorf("%w: total periods is %d", ErrPremiumCalculation, totalPeriods)
	}

	totalPremium := premiumPerPeriod * float64(totalPeriods)
	gst := totalPremium * gstRate
	totalPremiumWithGST := totalPremium + gst
	gstPerPeriod := gst / float64(totalPeriods)
	premiumPerPeriodWithGST := premiumPerPeriod + gstPerPeriod

	if math.IsNaN(totalPremiumWithGST) || math.IsInf(totalPremiumWithGST, 0) {
		return nil, fmt.Errorf("%w: non-finite total premium", ErrPremiumCalculation)
	}

	return &Breakdown{
		BasePremium:             basePremium,
		PremiumPerPeriod:        premiumPerPeriod,
		TotalPeriods:            totalPeriods,
		TotalPremium:            totalPremium,
		GST:                     gst,
		TotalPremiumWithGST:     totalPremiumWithGST,
		GSTPerPeriod:            gstPerPeriod,
		PremiumPerPeriodWithGST: premiumPerPeriodWithGST,
	}, nil
}

// Details renders the full policy report. A premium-calculation failure is
// rendered as a fallback line instead of propagating.
func (p *Policy) Details() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Policy Details:\n", p.Type)
	fmt.Fprintf(&sb, "Policy Number: %s\n", p.Number)
	fmt.Fprintf(&sb, "Coverage Option: %s\n", p.Coverage)
	fmt.Fprintf(&sb, "Policy Tenure: %d years\n", p.Tenure.Years())
	fmt.Fprintf(&sb, "Premium Frequency: %s\n", p.Frequency)
	fmt.Fprintf(&sb, "Policy Start Date: %s\n", p.StartDate.Format(dateLayout))
	fmt.Fprintf(&sb, "Policy End Date: %s\n", p.EndDate.Format(dateLayout))

	breakdown, err := p.CalculatePremium()
	if err != nil {
		fmt.Fprintf(&sb, "Error calculating premiums: %s\n", err)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Base Premium (Before Modifier): $%.2f\n", p.Coverage.Value())
	fmt.Fprintf(&sb, "Age Price Added: $%.2f\n", p.AgeSurcharge())
	fmt.Fprintf(&sb, "%s: $%.2f\n", p.Risk.SurchargeLabel(), p.Risk.SurchargeAmount())
	fmt.Fprintf(&sb, "Base Premium (After Modifiers): $%.2f\n", breakdown.BasePremium)
	fmt.Fprintf(&sb, "Premium Per Period: $%.2f\n", breakdown.PremiumPerPeriod)
	fmt.Fprintf(&sb, "GST Per Period: $%.2f\n", breakdown.GSTPerPeriod)
	fmt.Fprintf(&sb, "Premium Per Period (With GST): $%.2f\n", breakdown.PremiumPerPeriodWithGST)
	fmt.Fprintf(&sb, "Total Premium: $%.2f\n", breakdown.TotalPremium)
	fmt.Fprintf(&sb, "GST (9%%): $%.2f\n", breakdown.GST)
	fmt.Fprintf(&sb, "Total Premium (With GST): $%.2f\n", breakdown.TotalPremiumWithGST)
	return sb.String()
}
