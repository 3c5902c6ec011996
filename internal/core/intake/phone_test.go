package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"one digit", "1", "1"},
		{"two digits", "11", "11"},
		{"three digits", "119", "(11) 9"},
		{"six digits", "119999", "(11) 9999"},
		{"seven digits", "1199998", "(11) 9999-8"},
		{"ten digits landline grouping", "1199998888", "(11) 9999-8888"},
		{"eleven digits mobile grouping", "11999998888", "(11) 99999-8888"},
		{"overflow truncated to eleven", "119999988889999", "(11) 99999-8888"},
		{"punctuation stripped", "(11) 99999-8888", "(11) 99999-8888"},
		{"mixed garbage stripped", "+55 (11) 9aB99-99.8888x", "(11) 99999-8888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.raw))
		})
	}
}

func TestFormatPhone_idempotent(t *testing.T) {
	inputs := []string{"1", "119", "119999", "1199998888", "11999998888"}
	for _, in := range inputs {
		once := FormatPhone(in)
		assert.Equal(t, once, FormatPhone(once))
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "11999998888", Digits("(11) 99999-8888"))
	assert.Equal(t, "", Digits("abc -()"))
}
