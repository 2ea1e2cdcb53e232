package otp

import (
	"crypto/rand"
	"math/big"
)

// Generate returns a random six digit one-time code (100000-999999).
func Generate() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 100000, nil
}
