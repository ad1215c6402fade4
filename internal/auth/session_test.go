package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSessionSignVerify(t *testing.T) {
	s := NewSession("test-secret")

	token, err := s.Sign()
	require.NoError(t, err)
	assert.NoError(t, s.Verify(token))
}

func TestSessionVerifyRejectsGarbage(t *testing.T) {
	s := NewSession("test-secret")
	assert.Error(t, s.Verify("not-a-token"))
	assert.Error(t, s.Verify(""))
}

func TestSessionVerifyRejectsOtherSecret(t *testing.T) {
	token, err := NewSession("secret-a").Sign()
	require.NoError(t, err)

	assert.Error(t, NewSession("secret-b").Verify(token))
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(string(hash), "hunter22"))
	assert.False(t, CheckPassword(string(hash), "hunter23"))
	assert.False(t, CheckPassword(string(hash), ""))
}
