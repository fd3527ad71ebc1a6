package identifier

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
)

const (
	// DefaultAlphabet avoids characters that need escaping in URLs
	DefaultAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// DefaultLength gives ~95 bits of entropy with DefaultAlphabet
	DefaultLength = 16
)

// NanoIDGenerator produces random ids with go-nanoid
type NanoIDGenerator struct {
	alphabet string
	length   int
}

// NewNanoIDGenerator creates a generator with the default alphabet and length
func NewNanoIDGenerator() core.IDGenerator {
	return &NanoIDGenerator{alphabet: DefaultAlphabet, length: DefaultLength}
}

// NewID returns a fresh identifier
func (g *NanoIDGenerator) NewID() (string, error) {
	id, err := gonanoid.Generate(g.alphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}
