package model

import (
	"fmt"
	"strings"
)

// Credential holds a single name→secret pair. Name identifies the program or
// service the secret belongs to and is the unique key within the store;
// Secret is stored and returned verbatim (plain text — a stated limitation
// of the system, not an oversight).
type Credential struct {
	Name   string
	Secret string
}

// NewCredential trims surrounding whitespace from both fields and returns
// ErrInvalidInput if either is empty afterward. All writes into the store go
// through this constructor so stored names are always trimmed.
func NewCredential(name, secret string) (Credential, error) {
	name = strings.TrimSpace(name)
	secret = strings.TrimSpace(secret)
	if name == "" {
		return Credential{}, fmt.Errorf("credential name is empty: %w", ErrInvalidInput)
	}
	if secret == "" {
		return Credential{}, fmt.Errorf("credential secret is empty: %w", ErrInvalidInput)
	}
	return Credential{Name: name, Secret: secret}, nil
}
