package log

import (
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	headerRequestID      = "X-Request-ID"
	metadataKeyRequestID = "x-request-id"
)

var requestIDGenerator atomic.Pointer[func() string]

// SetRequestIDGenerator replaces the generator behind NewRequestID. A nil
// fn restores the default UUID v4 generator.
func SetRequestIDGenerator(fn func() string) {
	if fn == nil {
		requestIDGenerator.Store(nil)
		return
	}
	requestIDGenerator.Store(&fn)
}

// NewRequestID returns a fresh correlation ID. It falls back to a UUID when
// the configured generator yields "".
func NewRequestID() string {
	if fn := requestIDGenerator.Load(); fn != nil {
		if id := (*fn)(); id != "" {
			return id
		}
	}
	return uuid.New().String()
}
