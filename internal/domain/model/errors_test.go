package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyError_MessageListsViolations(t *testing.T) {
	err := &PolicyError{Violations: []ViolationKind{ViolationTooShort, ViolationMissingNumber}}

	assert.Equal(t, "secret violates policy: too_short, missing_number", err.Error())
}

func TestStorageError_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := &StorageError{Op: "add credential", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "add credential: disk full", err.Error())
}
