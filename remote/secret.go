package remote

// Secret holds a credential whose value never changes after construction.
// It can be read exactly two ways: as plaintext for protocols that need the
// raw value, or as a detached byte copy for callers that accept a protected
// form. There is no other access path to the backing buffer.
type Secret struct {
	data []byte
}

func NewSecret(value string) Secret {
	return Secret{data: []byte(value)}
}

// NewSecretBytes copies value so the caller can wipe its own buffer
// afterwards.
func NewSecretBytes(value []byte) Secret {
	data := make([]byte, len(value))
	copy(data, value)
	return Secret{data: data}
}

// Plaintext renders the credential as a string. Allocates; call only when a
// protocol requires the raw value.
func (s Secret) Plaintext() string {
	return string(s.data)
}

// Bytes returns a detached copy of the credential. Mutating the copy does
// not affect the secret.
func (s Secret) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

func (s Secret) Empty() bool {
	return len(s.data) == 0
}

// Wipe overwrites the backing memory with zeros. The secret is unusable
// afterwards.
func (s Secret) Wipe() {
	for i := range s.data {
		s.data[i] = 0
	}
}
