package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInvalid = errors.New("invalid input")

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"anna@example.com", true},
		{" anna@example.com ", true},
		{"Anna <anna@example.com>", false},
		{"anna@localhost", false},
		{"anna", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.in))
		})
	}
}

func TestErrors_AccumulatesAndWraps(t *testing.T) {
	var es Errors
	es.Required("firstName", " ")
	es.Length("username", "ab", 3, 50)
	es.Email("email", "nope")
	es.Length("password", "secret", 6, 0)

	err := es.Err(errInvalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalid)
	assert.Len(t, es, 3)
	assert.Contains(t, err.Error(), "firstName: is required")
	assert.Contains(t, err.Error(), "username: must be at least 3 characters")
	assert.Contains(t, err.Error(), "email: must be a valid email")
}

func TestErrors_EmptyIsNil(t *testing.T) {
	var es Errors
	es.Required("name", "Milo")
	assert.NoError(t, es.Err(errInvalid))
}
