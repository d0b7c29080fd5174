// Package marc provides a single MARC21 field together with its MARC21
// transmission encoding and its MARCMaker mnemonic text form.
//
// A Field is either a control field (tags below "010") holding a single data
// payload, or a data field holding two indicators and an ordered list of
// subfields. The variant is fixed when the field is constructed.
package marc

import "github.com/pkg/errors"

const (
	// SubfieldDelimiter precedes every subfield code in the MARC21 encoding.
	SubfieldDelimiter byte = 0x1F

	// FieldTerminator ends every field in the MARC21 encoding.
	FieldTerminator byte = 0x1E
)

// Kind identifies which variant a Field holds.
type Kind int

const (
	// ControlField holds a data payload and no indicators or subfields.
	ControlField Kind = iota
	// DataField holds two indicators and an ordered list of subfields.
	DataField
)

func (k Kind) String() string {
	switch k {
	case ControlField:
		return "control field"
	case DataField:
		return "data field"
	default:
		return "unknown field kind"
	}
}

var (
	// ErrMalformedIndicators is returned when a data field is constructed
	// with fewer than two indicators.
	ErrMalformedIndicators = errors.New("marc: data field requires two indicators")

	// ErrOddSubfields is returned when a flat subfield list ends with a code
	// that has no value.
	ErrOddSubfields = errors.New("marc: malformed subfield list: unpaired subfield code")

	// ErrWrongVariant is returned when an operation is used on a field of
	// the other kind.
	ErrWrongVariant = errors.New("marc: operation not valid for field kind")

	// ErrInvalidSubfieldCode is returned when a subfield code is not a
	// single byte.
	ErrInvalidSubfieldCode = errors.New("marc: subfield code must be a single byte")

	// ErrSyntax is the cause of every *SyntaxError.
	ErrSyntax = errors.New("marc: syntax error")
)
