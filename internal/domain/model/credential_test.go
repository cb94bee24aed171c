package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredential_TrimsFields(t *testing.T) {
	cred, err := NewCredential("  github  ", "\tSup3r$ecret1\n")

	require.NoError(t, err)
	assert.Equal(t, "github", cred.Name)
	assert.Equal(t, "Sup3r$ecret1", cred.Secret)
}

func TestNewCredential_RejectsEmptyFields(t *testing.T) {
	_, err := NewCredential("", "secret")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewCredential("github", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewCredential("   ", "secret")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewCredential("github", " \t ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
