package driven

import "context"

// CredentialStore defines the driven port for wholesale persistence of the
// name→secret record set. The store is loaded and saved as a unit; there is
// no per-entry persistence.
type CredentialStore interface {
	// Load returns the persisted record set. A missing or malformed backing
	// store yields an empty non-nil map with a nil error — absence and
	// corruption are recoverable, not failures. Only I/O faults are errors.
	Load(ctx context.Context) (map[string]string, error)

	// Save replaces the persisted record set with entries. The write must be
	// atomic with respect to crash or interruption: a previously valid
	// record set is never left corrupt by a failed save.
	Save(ctx context.Context, entries map[string]string) error
}
