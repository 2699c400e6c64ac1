package policyservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCoverageOption(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      CoverageOption
		expectedError bool
	}{
		{name: "Basic", input: "BASIC", expected: CoverageBasic},
		{name: "Standard", input: "STANDARD", expected: CoverageStandard},
		{name: "Premium", input: "PREMIUM", expected: CoveragePremium},
		{name: "Unknown", input: "PLATINUM", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option, err := ParseCoverageOption(tt.input)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, option)
				assert.Equal(t, tt.input, option.String())
			}
		})
	}
}

func TestParsePolicyTenure(t *testing.T) {
	for _, years := range []int{5, 10, 15, 20} {
		tenure, err := ParsePolicyTenure(years)
		assert.NoError(t, err)
		assert.Equal(t, years, tenure.Years())
	}
	_, err := ParsePolicyTenure(7)
	assert.Error(t, err)
}

func TestParsePremiumFrequency(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      PremiumFrequency
		expectedError bool
	}{
		{name: "Monthly", input: "MONTHLY", expected: FrequencyMonthly},
		{name: "Quarterly", input: "QUARTERLY", expected: FrequencyQuarterly},
		{name: "Semi-annually", input: "SEMI_ANNUALLY", expected: FrequencySemiAnnually},
		{name: "Annually", input: "ANNUALLY", expected: FrequencyAnnually},
		{name: "Unknown", input: "WEEKLY", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frequency, err := ParsePremiumFrequency(tt.input)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, frequency)
				assert.Equal(t, tt.input, frequency.String())
			}
		})
	}
}

func TestNewPolicy(t *testing.T) {
	policy, err := NewLifePolicy("2024-01-01", CoverageStandard, TenureFiveYears, FrequencyMonthly, 30, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, policy.Number)
	assert.Equal(t, PolicyLife, policy.Type)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), policy.StartDate)
	assert.Equal(t, time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC), policy.EndDate)

	other, err := NewLifePolicy("2024-01-01", CoverageStandard, TenureFiveYears, FrequencyMonthly, 30, true)
	assert.NoError(t, err)
	assert.NotEqual(t, policy.Number, other.Number)
}

func TestNewPolicyInvalidDate(t *testing.T) {
	for _, date := range []string{"01/01/2024", "2024-13-40", "not a date", ""} {
		_, err := NewLifePolicy(date, CoverageBasic, TenureFiveYears, FrequencyMonthly, 30, false)
		assert.ErrorIs(t, err, ErrInvalidStartDate)
	}
}

func TestPolicyActive(t *testing.T) {
	policy, err := NewHealthPolicy("2024-01-01", CoverageBasic, TenureFiveYears, FrequencyMonthly, 40, false)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "Before start", now: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), expected: false},
		{name: "Exactly at start", now: policy.StartDate, expected: false},
		{name: "Mid-term", now: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "Exactly at end", now: policy.EndDate, expected: false},
		{name: "After end", now: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.Active(tt.now))
		})
	}
}

func TestCalculatePremium(t *testing.T) {
	tests := []struct {
		name     string
		policy   func() (*Policy, error)
		expected Breakdown
	}{
		{
			name: "Life policy for a thirty year old smoker",
			policy: func() (*Policy, error) {
				return NewLifePolicy("2024-01-01", CoverageStandard, TenureFiveYears, FrequencyMonthly, 30, true)
			},
			expected: Breakdown{
				BasePremium:             2800.0,
				PremiumPerPeriod:        2800.0,
				TotalPeriods:            5,
				TotalPremium:            14000.0,
				GST:                     1260.0,
				TotalPremiumWithGST:     15260.0,
				GSTPerPeriod:            252.0,
				PremiumPerPeriodWithGST: 3052.0,
			},
		},
		{
			name: "Health policy non-smoker annual",
			policy: func() (*Policy, error) {
				return NewHealthPolicy("2024-01-01", CoverageBasic, TenureTenYears, FrequencyAnnually, 50, false)
			},
			expected: Breakdown{
				BasePremium:             1500.0,
				PremiumPerPeriod:        125.0,
				TotalPeriods:            120,
				TotalPremium:            15000.0,
				GST:                     1350.0,
				TotalPremiumWithGST:     16350.0,
				GSTPerPeriod:            11.25,
				PremiumPerPeriodWithGST: 136.25,
			},
		},
		{
			name: "Accident policy with past injuries",
			policy: func() (*Policy, error) {
				return NewAccidentPolicy("2024-01-01", CoveragePremium, TenureFiveYears, FrequencyQuarterly, 20, true)
			},
			expected: Breakdown{
				BasePremium:             4200.0,
				PremiumPerPeriod:        1400.0,
				TotalPeriods:            15,
				TotalPremium:            21000.0,
				GST:                     1890.0,
				TotalPremiumWithGST:     22890.0,
				GSTPerPeriod:            126.0,
				PremiumPerPeriodWithGST: 1526.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := tt.policy()
			assert.NoError(t, err)

			breakdown, err := policy.CalculatePremium()
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected.BasePremium, breakdown.BasePremium, 1e-9)
			assert.InDelta(t, tt.expected.PremiumPerPeriod, breakdown.PremiumPerPeriod, 1e-9)
			assert.Equal(t, tt.expected.TotalPeriods, breakdown.TotalPeriods)
			assert.InDelta(t, tt.expected.TotalPremium, breakdown.TotalPremium, 1e-9)
			assert.InDelta(t, tt.expected.GST, breakdown.GST, 1e-9)
			assert.InDelta(t, tt.expected.TotalPremiumWithGST, breakdown.TotalPremiumWithGST, 1e-9)
			assert.InDelta(t, tt.expected.GSTPerPeriod, breakdown.GSTPerPeriod, 1e-9)
			assert.InDelta(t, tt.expected.PremiumPerPeriodWithGST, breakdown.PremiumPerPeriodWithGST, 1e-9)
		})
	}
}

// Every coverage, tenure and frequency combination must satisfy the GST
// identities that tie the breakdown figures together.
func TestCalculatePremiumIdentities(t *testing.T) {
	coverages := []CoverageOption{CoverageBasic, CoverageStandard, CoveragePremium}
	tenures := []PolicyTenure{TenureFiveYears, TenureTenYears, TenureFifteenYears, TenureTwentyYears}
	frequencies := []PremiumFrequency{FrequencyMonthly, FrequencyQuarterly, FrequencySemiAnnually, FrequencyAnnually}

	for _, coverage := range coverages {
		for _, tenure := range tenures {
			for _, frequency := range frequencies {
				policy, err := NewLifePolicy("2024-06-15", coverage, tenure, frequency, 35, true)
				assert.NoError(t, err)

				breakdown, err := policy.CalculatePremium()
				assert.NoError(t, err)
				assert.InDelta(t, breakdown.TotalPremium*0.09, breakdown.GST, 1e-9)
				assert.InDelta(t, breakdown.TotalPremium+breakdown.GST, breakdown.TotalPremiumWithGST, 1e-9)
				assert.InDelta(t, breakdown.GST/float64(breakdown.TotalPeriods), breakdown.GSTPerPeriod, 1e-9)
				assert.InDelta(t, breakdown.PremiumPerPeriod+breakdown.GSTPerPeriod, breakdown.PremiumPerPeriodWithGST, 1e-9)
				assert.InDelta(t, breakdown.PremiumPerPeriod*float64(breakdown.TotalPeriods), breakdown.TotalPremium, 1e-9)
			}
		}
	}
}

func TestCalculatePremiumDeterminism(t *testing.T) {
	policy, err := NewAccidentPolicy("2024-01-01", CoverageStandard, TenureTenYears, FrequencySemiAnnually, 45, true)
	assert.NoError(t, err)

	first, err := policy.CalculatePremium()
	assert.NoError(t, err)
	second, err := policy.CalculatePremium()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPolicyDetails(t *testing.T) {
	policy, err := NewLifePolicy("2024-01-01", CoverageStandard, TenureFiveYears, FrequencyMonthly, 30, true)
	assert.NoError(t, err)

	details := policy.Details()
	assert.Contains(t, details, "LIFE Policy Details:")
	assert.Contains(t, details, "Policy Number: "+policy.Number)
	assert.Contains(t, details, "Coverage Option: STANDARD")
	assert.Contains(t, details, "Policy Tenure: 5 years")
	assert.Contains(t, details, "Premium Frequency: MONTHLY")
	assert.Contains(t, details, "Policy Start Date: 2024-01-01")
	assert.Contains(t, details, "Policy End Date: 2029-01-01")
	assert.Contains(t, details, "Base Premium (Before Modifier): $2000.00")
	assert.Contains(t, details, "Age Price Added: $300.00")
	assert.Contains(t, details, "Smoker Price: $500.00")
	assert.Contains(t, details, "Base Premium (After Modifiers): $2800.00")
	assert.Contains(t, details, "Total Premium: $14000.00")
	assert.Contains(t, details, "GST (9%): $1260.00")
	assert.Contains(t, details, "Total Premium (With GST): $15260.00")
}

func TestPolicyDetailsAccidentLabel(t *testing.T) {
	policy, err := NewAccidentPolicy("2024-01-01", CoverageBasic, TenureFiveYears, FrequencyMonthly, 25, false)
	assert.NoError(t, err)

	details := policy.Details()
	assert.Contains(t, details, "ACCIDENT Policy Details:")
	assert.Contains(t, details, "Injuries Price: $0.00")
}
