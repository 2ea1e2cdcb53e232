package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("booking_not_found")
	assert.True(t, IsBusiness(err, "booking_not_found"))
	assert.False(t, IsBusiness(err, "field_not_found"))
	assert.False(t, IsBusiness(errors.New("boom"), "booking_not_found"))

	wrapped := fmt.Errorf("lookup: %w", err)
	assert.True(t, IsBusiness(wrapped, "booking_not_found"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsUniqueViolation(nil))

	wrapped := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueViolation(wrapped))
}
