package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gelato-api/internal/infrastructure/crypto"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := crypto.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("12345")
	require.NoError(t, err)
	assert.NotEqual(t, "12345", hash)

	assert.True(t, h.Verify(hash, "12345"))
	assert.False(t, h.Verify(hash, "123456"))
	assert.False(t, h.Verify("no-es-un-hash", "12345"))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	h := crypto.NewBcryptHasher(bcrypt.MinCost)
	a, err := h.Hash("12345")
	require.NoError(t, err)
	b, err := h.Hash("12345")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
