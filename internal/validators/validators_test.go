package validators

import (
	"errors"
	"testing"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidFieldType(t *testing.T) {
	for _, ft := range FieldTypes {
		assert.True(t, IsValidFieldType(ft), ft)
	}
	assert.False(t, IsValidFieldType("tennis"))
	assert.False(t, IsValidFieldType(""))
	assert.False(t, IsValidFieldType("Soccer"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 30, d.Day())

	_, err = ParseDate("30-08-2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-08-30 10:00:00")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("2026-08-30 18:30:00")
	require.NoError(t, err)
	assert.Equal(t, 18, dt.Hour())
	assert.Equal(t, 30, dt.Minute())

	_, err = ParseDateTime("2026-08-30")
	assert.Error(t, err)
}

func TestFieldMessages(t *testing.T) {
	// Same tag name gin's binding layer uses.
	v := gpvalidator.New()
	v.SetTagName("binding")

	type registerForm struct {
		Name                 string `binding:"required"`
		Email                string `binding:"required,email"`
		Password             string `binding:"required,min=6"`
		PasswordConfirmation string `binding:"required,eqfield=Password"`
		Role                 string `binding:"omitempty,oneof=user owner"`
	}

	err := v.Struct(registerForm{
		Email:                "not-an-email",
		Password:             "abc",
		PasswordConfirmation: "xyz123",
		Role:                 "admin",
	})
	require.Error(t, err)

	fields := FieldMessages(err)
	assert.Equal(t, "the field is required", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be at least 6 characters", fields["password"])
	assert.Equal(t, "must match password", fields["password_confirmation"])
	assert.Equal(t, "must be one of: user, owner", fields["role"])
}

func TestEmailDomain(t *testing.T) {
	d, ok := emailDomain("dina@example.com")
	assert.True(t, ok)
	assert.Equal(t, "example.com", d)

	_, ok = emailDomain("no-at-sign")
	assert.False(t, ok)

	_, ok = emailDomain("trailing@")
	assert.False(t, ok)
}

func TestIsEmailDomainValidMalformed(t *testing.T) {
	// Malformed addresses are rejected before any DNS lookup.
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
	assert.False(t, IsEmailDomainValid(""))
}

func TestFieldMessagesNonValidatorError(t *testing.T) {
	fields := FieldMessages(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"body": "malformed request body"}, fields)
}
