package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecret_Plaintext(t *testing.T) {
	s := NewSecret("hunter2")
	assert.Equal(t, "hunter2", s.Plaintext())
}

func TestSecret_BytesIsDetached(t *testing.T) {
	s := NewSecret("hunter2")

	b := s.Bytes()
	assert.Equal(t, []byte("hunter2"), b)

	// Mutating the copy must not touch the secret.
	b[0] = 'X'
	assert.Equal(t, "hunter2", s.Plaintext())
}

func TestSecret_NewSecretBytesCopiesInput(t *testing.T) {
	buf := []byte("topsecret")
	s := NewSecretBytes(buf)

	for i := range buf {
		buf[i] = 0
	}
	assert.Equal(t, "topsecret", s.Plaintext())
}

func TestSecret_Wipe(t *testing.T) {
	s := NewSecret("hunter2")
	s.Wipe()

	for _, b := range s.Bytes() {
		assert.Zero(t, b)
	}
}

func TestSecret_Empty(t *testing.T) {
	assert.True(t, Secret{}.Empty())
	assert.True(t, NewSecret("").Empty())
	assert.False(t, NewSecret("x").Empty())
}
