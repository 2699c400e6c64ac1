// Package lapse watches the policy registry and logs lifecycle transitions.
// A policy's state is driven purely by the passage of time between its start
// and end dates; the monitor observes those transitions so back-office staff
// see pending policies come into force and active ones lapse.
package lapse

import (
	"context"
	"sync"
	"time"

	"github.com/retailbank/backoffice/internal/config"
	"github.com/retailbank/backoffice/internal/service/policyservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	StatusPending = "PENDING"
	StatusActive  = "ACTIVE"
	StatusLapsed  = "LAPSED"
)

type PolicyRegistry interface {
	ListPolicies(ctx context.Context) []*policyservice.Policy
}

type Monitor struct {
	registry      PolicyRegistry
	workerPool    WorkerPoolI
	checkInterval time.Duration
	lastStatus    sync.Map
	now           func() time.Time
}

func New(cfg *config.Config, registry PolicyRegistry) *Monitor {
	return &Monitor{
		registry:      registry,
		workerPool:    NewWorkerPool(10),
		checkInterval: cfg.LapseInterval,
		now:           time.Now,
	}
}

func (m *Monitor) Start(ctx context.Context) {
	zap.L().Info("Policy lapse monitor started")
	go m.run(ctx)
}

func (m *Monitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping lapse monitor")
			return
		case <-ticker.C:
			m.checkPolicies(ctx)
		}
	}
}

func (m *Monitor) checkPolicies(ctx context.Context) {
	policies := m.registry.ListPolicies(ctx)

	var g errgroup.Group
	for _, policy := range policies {
		policy := policy
		g.Go(func() error {
			return m.workerPool.AddTask(ctx, func() error {
				m.checkPolicy(policy)
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching policy checks", zap.Error(err))
	}
}

// checkPolicy logs a policy's status once on first sight and again on every
// transition; unchanged statuses stay quiet.
func (m *Monitor) checkPolicy(policy *policyservice.Policy) {
	status := m.status(policy)
	previous, seen := m.lastStatus.Load(policy.Number)
	m.lastStatus.Store(policy.Number, status)

	if !seen {
		zap.L().Info("policy observed",
			zap.String("number", policy.Number),
			zap.String("status", status),
		)
		return
	}
	if previous != status {
		zap.L().Info("policy status changed",
			zap.String("number", policy.Number),
			zap.String("from", previous.(string)),
			zap.String("to", status),
		)
	}
}

func (m *Monitor) status(policy *policyservice.Policy) string {
	now := m.now()
	switch {
	case policy.Active(now):
		return StatusActive
	case now.Before(policy.EndDate):
		return StatusPending
	default:
		return StatusLapsed
	}
}
