package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ PolicyProvider = (*PolicyService)(nil)

// PolicyService owns the active secret policy: defaults at startup, overlaid
// with persisted overrides on Load, replaced only through validated Save, and
// restorable to defaults with Reset.
type PolicyService struct {
	mu     sync.Mutex
	store  driven.PolicyStore
	policy model.Policy
}

// NewPolicyService creates a PolicyService holding the default policy. Call
// Load to overlay persisted overrides.
func NewPolicyService(store driven.PolicyStore) *PolicyService {
	return &PolicyService{
		store:  store,
		policy: model.DefaultPolicy(),
	}
}

// Load replaces the in-memory policy with the persisted one (defaults where
// the persisted state is missing or partial).
func (s *PolicyService) Load(ctx context.Context) error {
	policy, err := s.store.Load(ctx)
	if err != nil {
		return &model.StorageError{Op: "load policy", Err: err}
	}

	s.mu.Lock()
	s.policy = policy
	s.mu.Unlock()
	return nil
}

// Current returns a copy of the active policy.
func (s *PolicyService) Current() model.Policy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy
}

// Save validates and persists a new policy. ErrInvalidInput when the bounds
// are inverted or below 1. If the write fails the prior policy stays active.
func (s *PolicyService) Save(ctx context.Context, policy model.Policy) error {
	if err := policy.ValidateBounds(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, policy); err != nil {
		return &model.StorageError{Op: "save policy", Err: err}
	}
	s.policy = policy
	return nil
}

// Reset restores the default policy. The in-memory reset always takes
// effect; a failed write is reported but does not undo it.
func (s *PolicyService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.policy = model.DefaultPolicy()
	if err := s.store.Save(ctx, s.policy); err != nil {
		slog.Warn("policy reset not persisted", "error", err)
		return &model.StorageError{Op: "reset policy", Err: err}
	}
	return nil
}
