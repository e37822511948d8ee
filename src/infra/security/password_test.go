package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("twixrox")
	require.NoError(t, err)
	assert.NotEqual(t, "twixrox", hash)

	assert.NoError(t, h.Compare(hash, "twixrox"))
	assert.Error(t, h.Compare(hash, "twixrocks"))
}
