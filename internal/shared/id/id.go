// Package id provides centralized ID generation for the service.
//
// This package offers type-safe ULID generation with:
//   - Lexicographic sortability: session listings sort by creation time
//   - Prefixed types: type-specific prefixes for debugging (sess_*, req_*, conn_*)
//   - Type safety: separate types prevent ID misuse
//
// Connection IDs use UUIDv4 instead: they are short-lived, never sorted,
// and only need uniqueness for the lifetime of one WebSocket.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ============================================================================
// Type-Safe ID Wrappers
// ============================================================================

// SessionID identifies a shell session
type SessionID string

// RequestID identifies an API request
type RequestID string

// ConnID identifies a WebSocket connection
type ConnID string

const (
	SessionPrefix = "sess"
	RequestPrefix = "req"
	ConnPrefix    = "conn"
)

// ============================================================================
// ULID Generator
// ============================================================================

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{
		entropy: rand.Reader,
	}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{
		entropy: entropy,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// ============================================================================
// Typed ID Constructors
// ============================================================================

// NewSessionID generates a new session ID
func NewSessionID() SessionID {
	return SessionID(Default().GenerateWithPrefix(SessionPrefix))
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// NewConnID generates a new WebSocket connection ID
func NewConnID() ConnID {
	return ConnID(fmt.Sprintf("%s_%s", ConnPrefix, uuid.NewString()))
}

// String methods for ID types
func (id SessionID) String() string { return string(id) }
func (id RequestID) String() string { return string(id) }
func (id ConnID) String() string    { return string(id) }

// ============================================================================
// Validation
// ============================================================================

// trimPrefix drops a "<prefix>_" marker. ULIDs never contain underscores.
func trimPrefix(id string) string {
	if i := strings.LastIndexByte(id, '_'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// IsValid reports whether id is a ULID, with or without a type prefix
func IsValid(id string) bool {
	_, err := ulid.Parse(trimPrefix(id))
	return err == nil
}

// Timestamp extracts the creation time embedded in a ULID-based ID
func Timestamp(id string) (time.Time, error) {
	parsed, err := ulid.Parse(trimPrefix(id))
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
