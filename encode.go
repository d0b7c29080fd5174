package marc

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// DefaultLineTerminator ends each field written by an Encoder. MARCMaker
// tooling expects DOS line endings.
const DefaultLineTerminator = "\r\n"

// MarshalMARC21 returns the MARC21 transmission encoding of the field. The
// tag is not part of the encoding; it belongs in the record directory.
//
// A control field is encoded as its data followed by FieldTerminator. A data
// field is encoded as its two indicators, then SubfieldDelimiter, code and
// value for every subfield, then FieldTerminator.
func (f *Field) MarshalMARC21() ([]byte, error) {
	if f.kind == ControlField {
		b := make([]byte, 0, len(f.data)+1)
		b = append(b, f.data...)
		return append(b, FieldTerminator), nil
	}

	b := make([]byte, 0, f.encodedLen())
	b = append(b, f.ind1, f.ind2)
	it := f.Iter()
	for it.Next() {
		sf := it.Subfield()
		b = append(b, SubfieldDelimiter, sf.Code)
		b = append(b, sf.Value...)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return append(b, FieldTerminator), nil
}

// MarshalText implements encoding.TextMarshaler. The field is rendered in
// MARCMaker form:
//
//	=001  fol05731351
//	=245  10$aThe pragmatic programmer : $bfrom journeyman to master /
//
// Spaces in control data and space indicators are written as a backslash.
// Special character mnemonics are not produced, and no line terminator is
// appended.
func (f *Field) MarshalText() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('=')
	b.WriteString(f.tag)
	b.WriteString("  ")

	if f.kind == ControlField {
		b.WriteString(strings.ReplaceAll(f.data, " ", `\`))
		return b.Bytes(), nil
	}

	b.Grow(f.encodedLen())
	b.WriteByte(makerIndicator(f.ind1))
	b.WriteByte(makerIndicator(f.ind2))
	it := f.Iter()
	for it.Next() {
		sf := it.Subfield()
		b.WriteByte('$')
		b.WriteByte(sf.Code)
		b.WriteString(sf.Value)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// String returns the MARCMaker form of the field. If the field cannot be
// rendered the error text is returned instead.
func (f *Field) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(text)
}

func makerIndicator(ind byte) byte {
	if ind == ' ' || ind == '\\' {
		return '\\'
	}
	return ind
}

// encodedLen is the MARC21 length of a data field: indicators, subfields
// and terminator.
func (f *Field) encodedLen() int {
	n := 3
	for _, sf := range f.subfields {
		n += len(sf.Value) + 2
	}
	return n
}

// MarshalText returns the MARCMaker form of fields, each followed by
// DefaultLineTerminator.
func MarshalText(fields ...*Field) ([]byte, error) {
	buff := bytes.NewBuffer(nil)
	err := NewEncoder(buff).Encode(fields...)
	if err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// An Encoder writes fields in MARCMaker form to an output stream.
type Encoder struct {
	w          *bufio.Writer
	terminator string
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:          bufio.NewWriter(w),
		terminator: DefaultLineTerminator,
	}
}

// SetLineTerminator configures the string written after every field. The
// default is DefaultLineTerminator.
func (e *Encoder) SetLineTerminator(terminator string) {
	e.terminator = terminator
}

// Encode writes the MARCMaker form of each field followed by the line
// terminator. nil fields are skipped. The output is flushed before Encode
// returns.
func (e *Encoder) Encode(fields ...*Field) error {
	for _, f := range fields {
		if f == nil {
			continue
		}
		text, err := f.MarshalText()
		if err != nil {
			return err
		}
		if _, err := e.w.Write(text); err != nil {
			return err
		}
		if _, err := e.w.WriteString(e.terminator); err != nil {
			return err
		}
	}
	return e.w.Flush()
}
