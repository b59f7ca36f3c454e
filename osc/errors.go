package osc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding is returned when an OSC-string is not valid UTF-8.
	ErrInvalidEncoding = errors.New("osc: invalid string encoding")

	// ErrUnknownTypeTag is matched by every *UnknownTypeTagError.
	ErrUnknownTypeTag = errors.New("osc: unknown type tag")

	// ErrMalformedTypeTags is returned when the typetag string is empty or
	// doesn't start with ','.
	ErrMalformedTypeTags = errors.New("osc: malformed typetag string")

	// ErrInvalidBlobLength is returned for a blob with a negative length prefix.
	ErrInvalidBlobLength = errors.New("osc: invalid blob length")

	// ErrInvalidArgument is returned when encoding a nil argument.
	ErrInvalidArgument = errors.New("osc: invalid argument")

	// ErrNilMessage is returned when encoding a nil *Message.
	ErrNilMessage = errors.New("osc: nil message")
)

// UnknownTypeTagError reports a typetag character with no registered decoder.
type UnknownTypeTagError struct {
	Tag TypeTag
}

func (e *UnknownTypeTagError) Error() string {
	return fmt.Sprintf("osc: unknown type tag %q", rune(e.Tag))
}

// Is reports whether target is ErrUnknownTypeTag.
func (e *UnknownTypeTagError) Is(target error) bool {
	return target == ErrUnknownTypeTag
}
