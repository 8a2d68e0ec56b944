package terminfo

import (
	"errors"
	"fmt"
)

// ErrParse is returned by Decode for any malformed compiled entry: bad
// magic, a short read, an out-of-range header count, or an offset that
// points outside the string table. Decode errors are terminal for the
// buffer being read; nothing is returned partially.
var ErrParse = errors.New("terminfo: failed to parse compiled entry")

// ExpandKind identifies one of the ten ways an Expand call can fail.
type ExpandKind int

const (
	ErrStackUnderflow ExpandKind = iota
	ErrTypeMismatch
	ErrUnrecognizedFormatOption
	ErrInvalidVariableName
	ErrInvalidParameterIndex
	ErrMalformedCharacterConstant
	ErrIntegerConstantOverflow
	ErrMalformedIntegerConstant
	ErrFormatWidthOverflow
	ErrFormatPrecisionOverflow
)

func (k ExpandKind) String() string {
	switch k {
	case ErrStackUnderflow:
		return "not enough elements on the stack"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrUnrecognizedFormatOption:
		return "unrecognized format option"
	case ErrInvalidVariableName:
		return "invalid variable name"
	case ErrInvalidParameterIndex:
		return "invalid parameter index"
	case ErrMalformedCharacterConstant:
		return "malformed character constant"
	case ErrIntegerConstantOverflow:
		return "integer constant computation overflowed"
	case ErrMalformedIntegerConstant:
		return "malformed integer constant"
	case ErrFormatWidthOverflow:
		return "format width constant computation overflowed"
	case ErrFormatPrecisionOverflow:
		return "format precision constant computation overflowed"
	default:
		return "unknown expansion error"
	}
}

// ExpandError reports a failure interpreting a string capability's escape
// language. Payload carries the offending byte for the option/name/index
// variants that have one; it is 0 for the rest.
type ExpandError struct {
	Kind    ExpandKind
	Payload byte
}

func (e *ExpandError) Error() string {
	switch e.Kind {
	case ErrUnrecognizedFormatOption, ErrInvalidVariableName, ErrInvalidParameterIndex:
		return fmt.Sprintf("terminfo: %s: %q", e.Kind, e.Payload)
	default:
		return "terminfo: " + e.Kind.String()
	}
}

func expandErr(kind ExpandKind) error {
	return &ExpandError{Kind: kind}
}

func expandErrByte(kind ExpandKind, payload byte) error {
	return &ExpandError{Kind: kind, Payload: payload}
}
