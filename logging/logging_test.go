package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The startup failure path binds the logger to a variable before
// chaining level methods; zerolog's level methods take a pointer
// receiver, so the chain must run on an addressable logger.
func TestNewLoggerBoundChain(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("production")
	logger = logger.Output(&buf)

	logger.Error().Str("reason", "boom").Msg("startup failed")

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"reason":"boom"`)
	assert.Contains(t, out, `"message":"startup failed"`)
	assert.Contains(t, out, `"time":`)
}
