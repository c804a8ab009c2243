package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "formatted with country code", in: "+7 (900) 123-45-67", want: "79001234567"},
		{name: "leading eight", in: "89001234567", want: "79001234567"},
		{name: "already canonical", in: "79001234567", want: "79001234567"},
		{name: "ten digits without code", in: "9001234567", want: "79001234567"},
		{name: "spaces and dashes", in: "8 900 123 45 67", want: "79001234567"},
		{name: "empty", in: "", want: ""},
		{name: "garbage letters", in: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"+7 (900) 123-45-67", "89001234567", "79001234567", "12345"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once))
	}
}

func TestNormalizePhone_EquivalentForms(t *testing.T) {
	a := NormalizePhone("+7 (900) 123-45-67")
	b := NormalizePhone("89001234567")
	c := NormalizePhone("79001234567")
	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}
