// Package idgenerator generates unique identifiers composed of an optional
// prefix, a millisecond timestamp, and a base64url-encoded UUID.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate combines the joined prefixes, the current epoch millis and an
// encoded UUID. Without prefixes the result is just timestamp+uuid.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	encodedUUID := base64.RawURLEncoding.EncodeToString(uuidBytes())

	if prefix == "" {
		return fmt.Sprintf("%d%s", time.Now().UnixMilli(), encodedUUID)
	}

	return fmt.Sprintf("%s-%d%s", prefix, time.Now().UnixMilli(), encodedUUID)
}

func uuidBytes() []byte {
	id := uuid.New()
	return id[:]
}
