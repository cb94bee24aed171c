package jsonfile

import (
	"context"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PolicyStore = (*PolicyRepo)(nil)

// policyDocument is the on-disk shape of the settings file. Pointer fields
// make partial files legal: a key absent from the document keeps its default
// when overlaid, and keys the document adds beyond these are ignored.
type policyDocument struct {
	MinLength      *int  `json:"min_length,omitempty"`
	MaxLength      *int  `json:"max_length,omitempty"`
	RequireSpecial *bool `json:"require_special,omitempty"`
	RequireCapital *bool `json:"require_capital,omitempty"`
	RequireNumber  *bool `json:"require_number,omitempty"`
}

// PolicyRepo persists the policy as a JSON object of optional keys.
type PolicyRepo struct {
	path string
}

// NewPolicyRepo creates a PolicyRepo bound to the given file path.
func NewPolicyRepo(path string) *PolicyRepo {
	return &PolicyRepo{path: path}
}

// Load returns the defaults overlaid with any persisted overrides. Missing
// or malformed files yield the defaults unchanged.
func (r *PolicyRepo) Load(_ context.Context) (model.Policy, error) {
	policy := model.DefaultPolicy()

	var doc policyDocument
	ok, err := loadDocument(r.path, &doc)
	if err != nil {
		return model.Policy{}, err
	}
	if !ok {
		return policy, nil
	}

	if doc.MinLength != nil {
		policy.MinLength = *doc.MinLength
	}
	if doc.MaxLength != nil {
		policy.MaxLength = *doc.MaxLength
	}
	if doc.RequireSpecial != nil {
		policy.RequireSpecial = *doc.RequireSpecial
	}
	if doc.RequireCapital != nil {
		policy.RequireCapital = *doc.RequireCapital
	}
	if doc.RequireNumber != nil {
		policy.RequireNumber = *doc.RequireNumber
	}
	return policy, nil
}

// Save atomically writes the complete policy, every key present.
func (r *PolicyRepo) Save(_ context.Context, policy model.Policy) error {
	doc := policyDocument{
		MinLength:      &policy.MinLength,
		MaxLength:      &policy.MaxLength,
		RequireSpecial: &policy.RequireSpecial,
		RequireCapital: &policy.RequireCapital,
		RequireNumber:  &policy.RequireNumber,
	}
	return saveDocument(r.path, doc)
}
