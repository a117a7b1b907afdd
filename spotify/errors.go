package spotify

import (
	"fmt"
)

// InvalidIDSizeError reports an identifier string whose character length
// does not match the width of the expected encoding.
type InvalidIDSizeError struct {
	Expected int
	Value    string
}

func (e *InvalidIDSizeError) Error() string {
	return fmt.Sprintf("ID %q cannot be parsed: wrong identifier size; expected %d was %d", e.Value, e.Expected, len(e.Value))
}

// InvalidIDBytesError reports a raw byte buffer whose length does not match
// the fixed width of the identifier being decoded.
type InvalidIDBytesError struct {
	Bytes []byte
}

func (e *InvalidIDBytesError) Error() string {
	return fmt.Sprintf("ID bytes %v cannot be parsed", e.Bytes)
}

// InvalidFormatError reports input of the right shape but structurally
// invalid content: a bad alphabet symbol, a non-numeric field, invalid
// UTF-8 after percent decoding, or a missing required segment. Value is the
// complete original input.
type InvalidFormatError struct {
	Reason string
	Value  string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%q is not a valid Spotify URI: %s", e.Value, e.Reason)
}

// InvalidSchemeError reports input whose leading segment is not the
// "spotify" scheme word.
type InvalidSchemeError struct {
	Value string
}

func (e *InvalidSchemeError) Error() string {
	return fmt.Sprintf("URI %q does not have the 'spotify' scheme", e.Value)
}
