package domain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only newlines", "\n\n", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner blank kept", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Lines(tc.in))
		})
	}
}

func TestParseErrorMessageAndUnwrap(t *testing.T) {
	_, convErr := strconv.Atoi("x")
	err := NewParseError(3, "x", "integer", convErr)

	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"x"`)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	var pe *ParseError
	assert.True(t, errors.As(error(err), &pe))
	assert.Equal(t, "integer", pe.Want)

	noLine := &ParseError{Token: "7", Want: "0-8"}
	assert.Equal(t, `parse "7": want 0-8`, noLine.Error())
}
