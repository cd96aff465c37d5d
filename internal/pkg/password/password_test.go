package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	p, err := Generate(16)
	require.NoError(t, err)
	assert.Len(t, p, 16)

	// non-positive lengths fall back to the default
	p, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, p, DefaultLength)

	p, err = Generate(-3)
	require.NoError(t, err)
	assert.Len(t, p, DefaultLength)
}

func TestGenerateUsesRestrictedAlphabet(t *testing.T) {
	p, err := Generate(64)
	require.NoError(t, err)
	for _, c := range p {
		assert.Contains(t, generatedAlphabet, string(c))
	}
}

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, Verify(hash, "s3cret-pass"))
	assert.False(t, Verify(hash, "wrong"))
	assert.False(t, Verify("not-a-hash", "s3cret-pass"))
}
