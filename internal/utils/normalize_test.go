package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "case and punctuation", input: "HELLO, World!!", want: "hello world"},
		{name: "whitespace runs", input: "  please\t\tshare \n your   OTP  ", want: "please share your otp"},
		{name: "punctuation only", input: "?!...,", want: ""},
		{name: "inner punctuation splits words", input: "e-mail me@bank.com", want: "e mail me bank com"},
		{name: "underscore is punctuation", input: "account_number", want: "account number"},
		{name: "digits kept", input: "Call 1-800-555-0199 NOW", want: "call 1 800 555 0199 now"},
		{name: "unicode letters kept", input: "Café ÉTÉ", want: "café été"},
		{name: "fullwidth folded", input: "ＯＴＰ", want: "otp"},
		{name: "compatibility capital folded", input: "\u210Cello", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"HELLO, World!!",
		"  Your bank account -- has been LOCKED; share the OTP!  ",
		"Ünïcödé   text\twith spaces",
		"\u1FBA\u0345",
		"\u210Cello THERE",
		"İstanbul ΣΊΣΥΦΟΣ",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("hello world"), Normalize("HELLO, World!!"))
}
