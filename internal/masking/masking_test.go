package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	cases := map[string]string{
		"89991234599":      "+7-9**-***-**-99",
		"79991234599":      "+7-9**-***-**-99",
		"+7 916 111 22 33": "+7-9**-***-**-33",
		"+7 (495) 1234567": "+7-4**-***-**-67",
		"12345":            "12345",
		"+7 999":           "+7 999",
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskPhone(in), "input %q", in)
	}
}

func TestMaskPhone_Deterministic(t *testing.T) {
	in := "+7 999 123 45 99"
	assert.Equal(t, MaskPhone(in), MaskPhone(in))
}

func TestGetCity(t *testing.T) {
	assert.Equal(t, "Moscow", GetCity("Moscow, Tverskaya 1"))
	assert.Equal(t, "NoCommaAddress", GetCity("NoCommaAddress"))
	assert.Equal(t, "Kazan", GetCity("  Kazan  , Baumana 5, kv 2"))
	assert.Equal(t, "", GetCity(""))
	assert.Equal(t, "", GetCity(", street"))
}

func TestPrivilegeGate(t *testing.T) {
	assert.Equal(t, "89991234599", Phone("89991234599", true))
	assert.Equal(t, "+7-9**-***-**-99", Phone("89991234599", false))
	assert.Equal(t, "Moscow, Tverskaya 1", Address("Moscow, Tverskaya 1", true))
	assert.Equal(t, "Moscow", Address("Moscow, Tverskaya 1", false))
}
