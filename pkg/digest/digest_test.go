package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Deterministic(t *testing.T) {
	d := SHA256{}

	first := d.Digest("secure_pass")
	second := d.Digest("secure_pass")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // 256 bits, hex encoded
	assert.NotEqual(t, first, d.Digest("other_pass"))
}

func TestSHA256KnownVector(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		SHA256{}.Digest(""),
	)
}

func TestBLAKE2b256Deterministic(t *testing.T) {
	d := BLAKE2b256{}

	first := d.Digest("secure_pass")

	assert.Equal(t, first, d.Digest("secure_pass"))
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, SHA256{}.Digest("secure_pass"))
}

func TestDefaultIsSHA256(t *testing.T) {
	assert.Equal(t, SHA256{}.Digest("x"), Default().Digest("x"))
}
