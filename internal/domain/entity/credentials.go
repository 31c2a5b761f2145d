package entity

import (
	"errors"

	"go-healthcare-coordination/pkg/digest"
	"go-healthcare-coordination/pkg/validator"
)

// ErrInvalidParams is returned by entity constructors when a params struct
// fails validation.
var ErrInvalidParams = errors.New("invalid params")

var paramsValidator = validator.New()

// credentials holds an equality-only password digest computed at
// construction time. The comparison is exact-string and unsalted.
type credentials struct {
	passwordHash string
	digester     digest.Digester
}

func newCredentials(password string, d digest.Digester) credentials {
	if d == nil {
		d = digest.Default()
	}
	return credentials{
		passwordHash: d.Digest(password),
		digester:     d,
	}
}

// Login reports whether the supplied password digests to the stored hash.
// A mismatch is a false return, never an error; there is no lockout or
// retry policy.
func (c credentials) Login(password string) bool {
	return c.passwordHash == c.digester.Digest(password)
}
