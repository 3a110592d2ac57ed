package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckCode(t *testing.T) {
	hash, err := HashCode("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, CheckCode("1234", hash))
	assert.False(t, CheckCode("4321", hash))
	assert.False(t, CheckCode("1234", "not-a-bcrypt-hash"))
}

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, OTPLength)
		for _, c := range code {
			assert.GreaterOrEqual(t, c, '0')
			assert.LessOrEqual(t, c, '9')
		}
		seen[code] = true
	}
	// 20 draws from 10000 values; all identical would mean a broken source.
	assert.Greater(t, len(seen), 1)
}
