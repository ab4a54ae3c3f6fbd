package security

import (
	"strings"

	"github.com/google/uuid"
)

// SaltGenerator produces the per-request salt the gateway mixes into
// its request signature. Every call must return a fresh value.
type SaltGenerator interface {
	Generate() string
}

type uuidSaltGenerator struct{}

func NewSaltGenerator() SaltGenerator {
	return &uuidSaltGenerator{}
}

// Generate returns a 32-character hex token backed by the crypto/rand
// randomness of a v4 UUID.
func (g *uuidSaltGenerator) Generate() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
