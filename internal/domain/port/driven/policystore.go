package driven

import (
	"context"

	"github.com/ericfisherdev/passvault/internal/domain/model"
)

// PolicyStore defines the driven port for policy persistence.
type PolicyStore interface {
	// Load returns the effective policy: defaults overlaid key-by-key with
	// whatever overrides were persisted. Missing or malformed state yields
	// the defaults with a nil error; unknown persisted keys are ignored.
	Load(ctx context.Context) (model.Policy, error)

	// Save replaces the persisted policy. Same atomicity contract as
	// CredentialStore.Save.
	Save(ctx context.Context, policy model.Policy) error
}
