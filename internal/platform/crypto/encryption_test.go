package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripWithPassphrase(t *testing.T) {
	svc, err := New("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, svc.Configured())

	sealed, err := svc.Encrypt([]byte(`{"token":"abc"}`))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "abc")

	plain, err := svc.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"token":"abc"}`, string(plain))
}

func TestHexKeyUsedVerbatim(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	svc, err := New(hex.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, svc.key)
}

func TestDerivedKeyIsStable(t *testing.T) {
	a, err := New("passphrase")
	require.NoError(t, err)
	b, err := New("passphrase")
	require.NoError(t, err)
	assert.Equal(t, a.key, b.key)

	sealed, err := a.Encrypt([]byte("payload"))
	require.NoError(t, err)
	plain, err := b.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(plain))
}

func TestUnconfiguredPassesThrough(t *testing.T) {
	svc, err := New("")
	require.NoError(t, err)
	assert.False(t, svc.Configured())

	out, err := svc.Encrypt([]byte("plain"))
	require.NoError(t, err)
	assert.Equal(t, "plain", string(out))
}

func TestDecryptRejectsTampering(t *testing.T) {
	svc, err := New("passphrase")
	require.NoError(t, err)
	sealed, err := svc.Encrypt([]byte("payload"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = svc.Decrypt(sealed)
	assert.Error(t, err)

	_, err = svc.Decrypt([]byte{1, 2})
	assert.Error(t, err)
}
