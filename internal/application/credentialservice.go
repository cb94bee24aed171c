// Package application holds the store services the presentation layer calls.
// Services serialize their own mutating operations, but the backing files are
// not locked across processes: two instances writing the same files is
// unsupported.
package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// PolicyProvider supplies the active policy for write validation.
// PolicyService satisfies it.
type PolicyProvider interface {
	Current() model.Policy
}

// CredentialService provides CRUD over the name→secret mapping with policy
// enforcement and durable persistence. Every successful mutation performs
// exactly one wholesale save; a failed save leaves the in-memory mapping
// exactly as it was, so memory never diverges from what was last written.
// A single mutex serializes the read-validate-mutate-persist sequence.
type CredentialService struct {
	mu       sync.Mutex
	store    driven.CredentialStore
	policies PolicyProvider
	entries  map[string]string
}

// NewCredentialService creates an empty CredentialService. Call Load to
// populate it from the store.
func NewCredentialService(store driven.CredentialStore, policies PolicyProvider) *CredentialService {
	return &CredentialService{
		store:    store,
		policies: policies,
		entries:  map[string]string{},
	}
}

// Load replaces the in-memory mapping with the persisted record set.
// Missing or malformed persisted state loads as an empty store.
func (s *CredentialService) Load(ctx context.Context) error {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return &model.StorageError{Op: "load credentials", Err: err}
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// List returns all current credential names in no particular order.
// Callers that display them are responsible for sorting.
func (s *CredentialService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	return names
}

// Get returns the secret for name, matched exactly and case-sensitively.
// An absent name is ErrNotFound — an expected outcome, distinct from an
// entry whose secret happens to be empty.
func (s *CredentialService) Get(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret, ok := s.entries[name]
	if !ok {
		return "", fmt.Errorf("get credential %q: %w", name, model.ErrNotFound)
	}
	return secret, nil
}

// Add stores a credential. Both fields are trimmed; empty values are
// ErrInvalidInput and secrets failing the active policy are *PolicyError.
// Adding an existing name silently replaces its secret.
func (s *CredentialService) Add(ctx context.Context, name, secret string) error {
	cred, err := model.NewCredential(name, secret)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if res := s.policies.Current().Validate(cred.Secret); !res.OK() {
		return &model.PolicyError{Violations: res.Violations}
	}

	return s.commit(ctx, "add credential", func(entries map[string]string) {
		entries[cred.Name] = cred.Secret
	})
}

// Update replaces the secret of an existing credential. The name is matched
// exactly and is immutable; renaming is not supported.
func (s *CredentialService) Update(ctx context.Context, name, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[name]; !ok {
		return fmt.Errorf("update credential %q: %w", name, model.ErrNotFound)
	}

	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return fmt.Errorf("credential secret is empty: %w", model.ErrInvalidInput)
	}

	if res := s.policies.Current().Validate(trimmed); !res.OK() {
		return &model.PolicyError{Violations: res.Violations}
	}

	return s.commit(ctx, "update credential", func(entries map[string]string) {
		entries[name] = trimmed
	})
}

// Delete removes a credential. ErrNotFound when the name is absent.
func (s *CredentialService) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[name]; !ok {
		return fmt.Errorf("delete credential %q: %w", name, model.ErrNotFound)
	}

	return s.commit(ctx, "delete credential", func(entries map[string]string) {
		delete(entries, name)
	})
}

// commit applies mutate to a copy of the current entries, persists the copy,
// and swaps it in only after the write succeeds — rollback by construction.
// Callers must hold mu.
func (s *CredentialService) commit(ctx context.Context, op string, mutate func(map[string]string)) error {
	next := make(map[string]string, len(s.entries)+1)
	for name, secret := range s.entries {
		next[name] = secret
	}
	mutate(next)

	if err := s.store.Save(ctx, next); err != nil {
		return &model.StorageError{Op: op, Err: err}
	}
	s.entries = next
	return nil
}
