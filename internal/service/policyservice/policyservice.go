// Package policyservice implements the insurance policy engine: policy
// construction, the date-bounded lifecycle, premium computation with
// per-variant risk modifiers, and the in-memory policy registry.
package policyservice

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrPolicyNotFound = errors.New("policy not found")

// CreateParams carries everything needed to construct a policy variant.
type CreateParams struct {
	Type         PolicyType
	StartDate    string
	Coverage     CoverageOption
	Tenure       PolicyTenure
	Frequency    PremiumFrequency
	Age          int
	Smoker       bool
	PastInjuries bool
}

type Service struct {
	mu       sync.RWMutex
	policies map[string]*Policy
}

func New() *Service {
	return &Service{
		policies: make(map[string]*Policy),
	}
}

func build(params CreateParams) (*Policy, error) {
	switch params.Type {
	case PolicyLife:
		return NewLifePolicy(params.StartDate, params.Coverage, params.Tenure, params.Frequency, params.Age, params.Smoker)
	case PolicyHealth:
		return NewHealthPolicy(params.StartDate, params.Coverage, params.Tenure, params.Frequency, params.Age, params.Smoker)
	case PolicyAccident:
		return NewAccidentPolicy(params.StartDate, params.Coverage, params.Tenure, params.Frequency, params.Age, params.PastInjuries)
	}
	return nil, errors.New("unknown policy type: " + string(params.Type))
}

// CreatePolicy constructs a policy, registers it by number and returns it
// with its premium breakdown.
func (s *Service) CreatePolicy(ctx context.Context, params CreateParams) (*Policy, *Breakdown, error) {
	policy, err := build(params)
	if err != nil {
		zap.L().Error("failed to construct policy", zap.Error(err))
		return nil, nil, err
	}
	breakdown, err := policy.CalculatePremium()
	if err != nil {
		zap.L().Error("failed to calculate premium", zap.Error(err))
		return nil, nil, err
	}

	s.mu.Lock()
	s.policies[policy.Number] = policy
	s.mu.Unlock()

	zap.L().Info("policy registered",
		zap.String("number", policy.Number),
		zap.String("type", string(policy.Type)),
	)
	return policy, breakdown, nil
}

// Quote computes a premium breakdown without registering the policy.
func (s *Service) Quote(ctx context.Context, params CreateParams) (*Breakdown, error) {
	policy, err := build(params)
	if err != nil {
		return nil, err
	}
	return policy.CalculatePremium()
}

// GetPolicy returns the registered policy for number.
func (s *Service) GetPolicy(ctx context.Context, number string) (*Policy, error) {
	s.mu.RLock()
	policy, ok := s.policies[number]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrPolicyNotFound
	}
	return policy, nil
}

// ListPolicies returns all registered policies, feeding the lapse monitor.
func (s *Service) ListPolicies(ctx context.Context) []*Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	policies := make([]*Policy, 0, len(s.policies))
	for _, policy := range s.policies {
		policies = append(policies, policy)
	}
	return policies
}
