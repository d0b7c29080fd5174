package marc

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A SyntaxError describes malformed MARC21 or MARCMaker input.
type SyntaxError struct {
	Offset int // byte offset in the input where the error was found
	msg    string
}

func (e *SyntaxError) Error() string {
	return "marc: syntax error at offset " + strconv.Itoa(e.Offset) + ": " + e.msg
}

// Cause returns ErrSyntax.
func (e *SyntaxError) Cause() error { return ErrSyntax }

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// UnmarshalMARC21 parses the MARC21 transmission encoding of a single field,
// as produced by MarshalMARC21. The tag is taken from the record directory
// and selects the kind of field. data must end with FieldTerminator.
//
// For a data field the two bytes before the first SubfieldDelimiter are the
// indicators. Each delimited chunk is a code byte followed by the value;
// empty chunks are skipped.
func UnmarshalMARC21(tag string, data []byte) (*Field, error) {
	tag = normalizeTag(tag)
	if len(data) == 0 || data[len(data)-1] != FieldTerminator {
		return nil, errors.Wrapf(&SyntaxError{Offset: len(data), msg: "missing field terminator"}, "field %s", tag)
	}
	data = data[:len(data)-1]

	if isControlTag(tag) {
		return newControlField(tag, string(data)), nil
	}

	chunks := bytes.Split(data, []byte{SubfieldDelimiter})
	if len(chunks[0]) != 2 {
		return nil, errors.Wrapf(&SyntaxError{Offset: 0, msg: "expected 2 indicators, have " + strconv.Itoa(len(chunks[0]))}, "field %s", tag)
	}

	f := newDataField(tag, chunks[0][0], chunks[0][1])
	f.subfields = make([]Subfield, 0, len(chunks)-1)
	for _, chunk := range chunks[1:] {
		if len(chunk) == 0 {
			continue
		}
		f.subfields = append(f.subfields, Subfield{Code: chunk[0], Value: string(chunk[1:])})
	}
	return f, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It parses a single field
// in the MARCMaker form produced by MarshalText. A backslash in control data
// or in an indicator position is read as a space.
//
// Special character mnemonics are not interpreted, so a value containing '$'
// does not survive a round trip.
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := parseMaker(string(text))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// makerPrefixLen is the length of "=TAG  ".
const makerPrefixLen = 6

func parseMaker(line string) (*Field, error) {
	if len(line) < makerPrefixLen {
		return nil, &SyntaxError{Offset: len(line), msg: "line too short"}
	}
	if line[0] != '=' {
		return nil, &SyntaxError{Offset: 0, msg: "expected '='"}
	}
	if line[4:6] != "  " {
		return nil, &SyntaxError{Offset: 4, msg: "expected two spaces after tag"}
	}

	tag := line[1:4]
	rest := line[makerPrefixLen:]
	if isControlTag(tag) {
		return newControlField(tag, strings.ReplaceAll(rest, `\`, " ")), nil
	}

	if len(rest) < 2 {
		return nil, errors.Wrapf(&SyntaxError{Offset: len(line), msg: "missing indicators"}, "field %s", tag)
	}
	f := newDataField(tag, fromMakerIndicator(rest[0]), fromMakerIndicator(rest[1]))

	rest = rest[2:]
	if rest == "" {
		return f, nil
	}
	if rest[0] != '$' {
		return nil, errors.Wrapf(&SyntaxError{Offset: makerPrefixLen + 2, msg: "expected '$'"}, "field %s", tag)
	}

	offset := makerPrefixLen + 3
	for _, chunk := range strings.Split(rest[1:], "$") {
		if chunk == "" {
			return nil, errors.Wrapf(&SyntaxError{Offset: offset, msg: "missing subfield code"}, "field %s", tag)
		}
		f.subfields = append(f.subfields, Subfield{Code: chunk[0], Value: chunk[1:]})
		offset += len(chunk) + 1
	}
	return f, nil
}

func fromMakerIndicator(ind byte) byte {
	if ind == '\\' {
		return ' '
	}
	return ind
}

// UnmarshalText parses fields in MARCMaker form, one per line.
func UnmarshalText(data []byte) ([]*Field, error) {
	return NewDecoder(bytes.NewReader(data)).DecodeAll()
}

// A Decoder reads fields in MARCMaker form from an input stream.
type Decoder struct {
	data *bufio.Reader
	line int
	done bool
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		data: bufio.NewReader(r),
	}
}

// Decode reads the next field. Lines may end in "\n" or "\r\n" and blank
// lines are skipped. If there is no field left, Decode returns io.EOF.
func (d *Decoder) Decode() (*Field, error) {
	for !d.done {
		line, err := d.data.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if err == io.EOF {
			d.done = true
		}
		d.line++

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		f, err := parseMaker(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", d.line)
		}
		return f, nil
	}
	return nil, io.EOF
}

// DecodeAll reads fields until the end of its input.
func (d *Decoder) DecodeAll() ([]*Field, error) {
	var fields []*Field
	for {
		f, err := d.Decode()
		if err == io.EOF {
			return fields, nil
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
}
