package ais

import "fmt"

// RangeError reports a value that cannot be represented in its field's
// declared bit width and has no clamp rule.
type RangeError struct {
	Value int64
	Width int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d does not fit in %d bits", e.Value, e.Width)
}

// LengthError reports a string longer than its field's declared character count.
type LengthError struct {
	Field string
	Max   int
	Got   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s is %d characters, maximum is %d", e.Field, e.Got, e.Max)
}

// InvalidCharacterError reports a character outside the six-bit ASCII alphabet.
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("character %q is outside the six-bit ASCII alphabet", e.Char)
}

// EncodingError reports a structurally invalid message, such as an assembled
// payload whose length differs from the declared bit count.
type EncodingError struct {
	Msg string
}

func (e *EncodingError) Error() string { return e.Msg }
