package marc

import (
	"github.com/pkg/errors"
)

// Subfield is a single code/value pair of a data field.
type Subfield struct {
	Code  byte
	Value string
}

// Field is a single MARC21 field.
//
// The zero value is not usable; construct fields with New, NewControlField
// or NewDataField.
type Field struct {
	tag  string
	kind Kind

	// control field
	data string

	// data field
	ind1, ind2 byte
	subfields  []Subfield

	// unpaired holds the trailing code of an odd-length flat subfield list
	// passed to New. It is reported by the first iteration.
	unpaired    string
	hasUnpaired bool
}

// New constructs a field from a tag and either control data or indicators
// plus a flat list of alternating subfield codes and values:
//
//	f, err := marc.New("245", []byte{'0', '1'}, []string{
//		"a", "The pragmatic programmer : ",
//		"b", "from journeyman to master /",
//		"c", "Andrew Hunt, David Thomas.",
//	}, "")
//
//	f, err := marc.New("001", nil, nil, "fol05731351")
//
// The tag is right-justified to a width of three before the kind is chosen.
// A control field ignores indicators and subfields. A data field ignores data
// and requires at least two indicators. An odd-length subfield list is
// accepted here; the unpaired code is reported as ErrOddSubfields by the
// first operation that iterates the subfields.
func New(tag string, indicators []byte, subfields []string, data string) (*Field, error) {
	tag = normalizeTag(tag)
	if isControlTag(tag) {
		return newControlField(tag, data), nil
	}

	if len(indicators) < 2 {
		return nil, errors.Wrapf(ErrMalformedIndicators, "field %s: have %d", tag, len(indicators))
	}

	f := newDataField(tag, indicators[0], indicators[1])
	f.subfields = make([]Subfield, 0, len(subfields)/2)
	for i := 0; i+1 < len(subfields); i += 2 {
		code := subfields[i]
		if len(code) != 1 {
			return nil, errors.Wrapf(ErrInvalidSubfieldCode, "field %s: subfield %d has code %q", tag, i/2, code)
		}
		f.subfields = append(f.subfields, Subfield{Code: code[0], Value: subfields[i+1]})
	}
	if len(subfields)%2 != 0 {
		f.unpaired = subfields[len(subfields)-1]
		f.hasUnpaired = true
	}
	return f, nil
}

// NewControlField constructs a control field. It returns ErrWrongVariant if
// the normalized tag selects a data field.
func NewControlField(tag, data string) (*Field, error) {
	tag = normalizeTag(tag)
	if !isControlTag(tag) {
		return nil, errors.Wrapf(ErrWrongVariant, "tag %s is a data field tag", tag)
	}
	return newControlField(tag, data), nil
}

// NewDataField constructs a data field. A zero indicator is stored as a
// space. It returns ErrWrongVariant if the normalized tag selects a control
// field.
func NewDataField(tag string, ind1, ind2 byte, subfields ...Subfield) (*Field, error) {
	tag = normalizeTag(tag)
	if isControlTag(tag) {
		return nil, errors.Wrapf(ErrWrongVariant, "tag %s is a control field tag", tag)
	}
	f := newDataField(tag, defaultIndicator(ind1), defaultIndicator(ind2))
	f.subfields = append([]Subfield(nil), subfields...)
	return f, nil
}

func newControlField(tag, data string) *Field {
	return &Field{tag: tag, kind: ControlField, data: data}
}

func newDataField(tag string, ind1, ind2 byte) *Field {
	return &Field{tag: tag, kind: DataField, ind1: ind1, ind2: ind2}
}

func defaultIndicator(ind byte) byte {
	if ind == 0 {
		return ' '
	}
	return ind
}

// Tag returns the normalized three character tag.
func (f *Field) Tag() string { return f.tag }

// Kind returns the variant of the field.
func (f *Field) Kind() Kind { return f.kind }

// IsControlField reports whether the field is a control field. Control fields
// lack indicators and subfields.
func (f *Field) IsControlField() bool { return isControlTag(f.tag) }

// IsSubjectField reports whether the field is a subject field (tag 6XX).
func (f *Field) IsSubjectField() bool { return isSubjectTag(f.tag) }

// Data returns the payload of a control field.
func (f *Field) Data() (string, error) {
	if err := f.want(ControlField, "Data"); err != nil {
		return "", err
	}
	return f.data, nil
}

// Indicators returns both indicators of a data field.
func (f *Field) Indicators() (ind1, ind2 byte, err error) {
	if err := f.want(DataField, "Indicators"); err != nil {
		return 0, 0, err
	}
	return f.ind1, f.ind2, nil
}

// Indicator1 returns the first indicator of a data field.
func (f *Field) Indicator1() (byte, error) {
	ind1, _, err := f.Indicators()
	return ind1, err
}

// Indicator2 returns the second indicator of a data field.
func (f *Field) Indicator2() (byte, error) {
	_, ind2, err := f.Indicators()
	return ind2, err
}

// AddSubfield appends a subfield to the end of a data field.
//
//	err := f.AddSubfield('u', "http://www.loc.gov")
func (f *Field) AddSubfield(code byte, value string) error {
	if err := f.want(DataField, "AddSubfield"); err != nil {
		return err
	}
	if f.hasUnpaired {
		return f.unpairedErr()
	}
	f.subfields = append(f.subfields, Subfield{Code: code, Value: value})
	return nil
}

// Iter returns a new iterator over the subfields of a data field. Every call
// returns an independent iterator that starts at the first subfield and sees
// the subfields present at the time of the call.
//
//	it := f.Iter()
//	for it.Next() {
//		sf := it.Subfield()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
func (f *Field) Iter() *SubfieldIterator {
	it := &SubfieldIterator{
		subfields: f.subfields[:len(f.subfields):len(f.subfields)],
	}
	if err := f.want(DataField, "Iter"); err != nil {
		it.err = err
		return it
	}
	if f.hasUnpaired {
		it.tailErr = f.unpairedErr()
	}
	return it
}

// Subfields returns every subfield of a data field in field order.
func (f *Field) Subfields() ([]Subfield, error) {
	var subfields []Subfield
	it := f.Iter()
	for it.Next() {
		subfields = append(subfields, it.Subfield())
	}
	return subfields, it.Err()
}

// Subfield returns the value of the first subfield with the given code. ok is
// false if no subfield matches.
//
//	title, ok, err := f.Subfield('a')
func (f *Field) Subfield(code byte) (value string, ok bool, err error) {
	values, err := f.GetSubfields(code)
	if err != nil {
		return "", false, err
	}
	if len(values) > 0 {
		return values[0], true, nil
	}
	return "", false, nil
}

// GetSubfields returns the values of every subfield matching any of codes.
// The values are in field order, not grouped by code.
//
//	values, err := f.GetSubfields('a', 'b', 'z')
func (f *Field) GetSubfields(codes ...byte) ([]string, error) {
	var values []string
	it := f.Iter()
	for it.Next() {
		sf := it.Subfield()
		for _, code := range codes {
			if sf.Code == code {
				values = append(values, sf.Value)
				break
			}
		}
	}
	return values, it.Err()
}

func (f *Field) want(k Kind, op string) error {
	if f.kind != k {
		return errors.Wrapf(ErrWrongVariant, "field %s: %s on %s", f.tag, op, f.kind)
	}
	return nil
}

func (f *Field) unpairedErr() error {
	return errors.Wrapf(ErrOddSubfields, "field %s: code %q after subfield %d", f.tag, f.unpaired, len(f.subfields))
}

// SubfieldIterator walks the subfields of a data field. It is not safe for
// concurrent use, but any number of iterators may walk the same field.
type SubfieldIterator struct {
	subfields []Subfield
	pos       int
	cur       Subfield
	err       error

	// tailErr is raised once the paired subfields are exhausted.
	tailErr error
}

// Next advances to the next subfield. It returns false when the subfields
// are exhausted or an error occurred.
func (it *SubfieldIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.pos < len(it.subfields) {
		it.cur = it.subfields[it.pos]
		it.pos++
		return true
	}
	it.err = it.tailErr
	it.cur = Subfield{}
	return false
}

// Subfield returns the subfield at the current position.
func (it *SubfieldIterator) Subfield() Subfield { return it.cur }

// Err returns the error that stopped iteration, if any.
func (it *SubfieldIterator) Err() error { return it.err }
