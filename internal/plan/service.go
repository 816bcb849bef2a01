package plan

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"nourishcoach/internal/kvstore"
	"nourishcoach/internal/logger"
	"nourishcoach/internal/metrics"
)

const lastPlanKey = "plan:last"

// Plan sources as reported to callers and to metrics.
const (
	SourceAPI  = "api"
	SourceMock = "mock"
)

var ErrNoLastPlan = errors.New("no plan has been generated yet")

// Service generates plans, preferring the upstream API but always answering.
type Service interface {
	Generate(ctx context.Context, prompt string, period Period) (*Plan, string, error)
	LastPlan(ctx context.Context) (*Plan, error)
}

type service struct {
	client *Client
	store  kvstore.Store

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewService(client *Client, store kvstore.Store) Service {
	return &service{client: client, store: store}
}

// Generate asks the upstream for a plan and falls back to the local mock on
// any failure. A new call aborts the previous in-flight upstream request, so
// only the latest answer ever wins.
func (s *service) Generate(ctx context.Context, prompt string, period Period) (*Plan, string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Abort the previous in-flight upstream request, if any. Cancelling an
	// already-finished context is harmless.
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	plan, source := s.fetchOrMock(ctx, prompt, period)
	metrics.RecordPlan(string(period), source)

	if err := s.persist(ctx, plan); err != nil {
		logger.Warnf("failed to persist last plan: %v", err)
	}

	return plan, source, nil
}

func (s *service) fetchOrMock(ctx context.Context, prompt string, period Period) (*Plan, string) {
	if s.client == nil || s.client.BaseURL == "" {
		metrics.RecordPlanFallback("unconfigured")
		return Mock(prompt, period), SourceMock
	}

	plan, err := s.client.Fetch(ctx, prompt, period)
	if err == nil {
		return plan, SourceAPI
	}

	reason := ReasonTransport
	var fe *FetchError
	if errors.As(err, &fe) {
		reason = fe.Reason
	}
	metrics.RecordPlanFallback(reason)
	logger.Warnf("plan API unavailable (%s), serving mock plan: %v", reason, err)
	return Mock(prompt, period), SourceMock
}

func (s *service) persist(ctx context.Context, plan *Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, lastPlanKey, data)
}

// LastPlan returns the most recently generated plan, from either source.
func (s *service) LastPlan(ctx context.Context) (*Plan, error) {
	data, found, err := s.store.Get(ctx, lastPlanKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoLastPlan
	}

	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
