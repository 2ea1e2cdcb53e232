package limiter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithoutRedis(t *testing.T) {
	l := New("")
	for i := 0; i < maxAttempts*2; i++ {
		assert.True(t, l.Allow(context.Background(), "dina@example.com"))
	}
}

func TestNilLimiterIsSafe(t *testing.T) {
	var l *LoginLimiter
	assert.True(t, l.Allow(context.Background(), "dina@example.com"))
	l.Reset(context.Background(), "dina@example.com")
}
