package jsonfile

import (
	"context"

	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo persists the credential record set as a flat JSON object
// mapping name to secret, e.g. {"github": "Sup3r$ecret1"}.
type CredentialRepo struct {
	path string
}

// NewCredentialRepo creates a CredentialRepo bound to the given file path.
func NewCredentialRepo(path string) *CredentialRepo {
	return &CredentialRepo{path: path}
}

// Load reads the full record set. Missing or malformed files yield an empty map.
func (r *CredentialRepo) Load(_ context.Context) (map[string]string, error) {
	var entries map[string]string
	ok, err := loadDocument(r.path, &entries)
	if err != nil {
		return nil, err
	}
	if !ok || entries == nil {
		return map[string]string{}, nil
	}
	return entries, nil
}

// Save atomically replaces the record set file with entries.
func (r *CredentialRepo) Save(_ context.Context, entries map[string]string) error {
	return saveDocument(r.path, entries)
}
