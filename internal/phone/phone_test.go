package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhoneNumber_Progressive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"7", "+7"},
		{"8", "+7"},
		{"9", "+7 9"},
		{"799", "+7 99"},
		{"7999", "+7 999"},
		{"79991", "+7 999 1"},
		{"7999123", "+7 999 123"},
		{"79991234", "+7 999 123 4"},
		{"799912345", "+7 999 123 45"},
		{"7999123456", "+7 999 123 45 6"},
		{"79991234567", "+7 999 123 45 67"},
		{"89991234567", "+7 999 123 45 67"},
		{"9991234567", "+7 999 123 45 67"},
		{"+7 (999) 123-45-67", "+7 999 123 45 67"},
		{"799912345678999", "+7 999 123 45 67"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPhoneNumber(tc.in), "input %q", tc.in)
	}
}

func TestFormatPhoneNumber_IdempotentOnFullNumber(t *testing.T) {
	for _, in := range []string{"89991234599", "79161112233", "9161112233", "+7 916 111 22 33"} {
		once := FormatPhoneNumber(in)
		assert.Equal(t, once, FormatPhoneNumber(once), "input %q", in)
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "", NormalizePhoneNumber(""))
	assert.Equal(t, "", NormalizePhoneNumber("---"))
	assert.Equal(t, "+7 999 123 45 67", NormalizePhoneNumber("89991234567"))
	assert.Equal(t, "+7 999 123 45 67", NormalizePhoneNumber("+7 999 123 45 67"))
	// parcial: delega en FormatPhoneNumber
	assert.Equal(t, "+7 123 45", NormalizePhoneNumber("12345"))

	canonical := NormalizePhoneNumber("79991234567")
	assert.Equal(t, canonical, NormalizePhoneNumber(canonical))
}

func TestNormalizePhoneNumber_ElevenDigitsAlwaysCanonical(t *testing.T) {
	for _, in := range []string{"70000000000", "89999999999", "71234567890", "80123456789"} {
		got := NormalizePhoneNumber(in)
		require.True(t, IsCanonical(got), "got %q", got)
		assert.Len(t, GetPhoneDigits(got), 11)
		assert.Equal(t, "+7", got[:2])
	}
}

func TestIsValidRussianPhone(t *testing.T) {
	assert.True(t, IsValidRussianPhone("+7 999 999 99 99"))
	assert.True(t, IsValidRussianPhone("89999999999"))
	assert.False(t, IsValidRussianPhone("12345"))
	assert.False(t, IsValidRussianPhone("19999999999"))
	assert.False(t, IsValidRussianPhone("799999999990"))
	assert.False(t, IsValidRussianPhone(""))
}

func TestGetPhoneDigits(t *testing.T) {
	assert.Equal(t, "79991234567", GetPhoneDigits("+7 (999) 123-45-67"))
	assert.Equal(t, "", GetPhoneDigits("phone"))
}

func TestValidate(t *testing.T) {
	got, err := Validate("8 916 111 22 33")
	require.NoError(t, err)
	assert.Equal(t, "+7 916 111 22 33", got)

	_, err = Validate("12345")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = Validate("")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestE164(t *testing.T) {
	assert.Equal(t, "+79161112233", E164("8 (916) 111-22-33"))
	assert.Equal(t, "", E164("916"))
}
