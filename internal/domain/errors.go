package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWinner is returned when the draws run out before any board wins.
	ErrNoWinner = errors.New("no board won")
	// ErrUnknownDay is returned for a day with no registered solver.
	ErrUnknownDay = errors.New("unknown day")
	// ErrEmptyInput is returned when a parser is handed no records.
	ErrEmptyInput = errors.New("empty input")
)

// ParseError reports an input token that did not have the expected shape.
type ParseError struct {
	Line  int // 1-based; 0 when not line oriented
	Token string
	Want  string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %q: want %s", e.Token, e.Want)
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError builds a ParseError for line (1-based).
func NewParseError(line int, token, want string, err error) *ParseError {
	return &ParseError{Line: line, Token: token, Want: want, Err: err}
}
