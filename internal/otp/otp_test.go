package otp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateStaysInSixDigitRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.GreaterOrEqual(t, code, 100000)
		require.LessOrEqual(t, code, 999999)
	}
}

func TestGenerateVaries(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		code, err := Generate()
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from 900k values collapsing to one would mean a broken source.
	require.Greater(t, len(seen), 1)
}
