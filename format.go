package marc

import "strings"

// subdivisionCodes are the subject subfield codes joined with " -- " by
// Format.
const subdivisionCodes = "vxyz"

// Value returns the field content without tag, indicators or subfield
// delimiters. For a data field the subfield values are concatenated in order.
func (f *Field) Value() (string, error) {
	if f.kind == ControlField {
		return f.data, nil
	}

	var b strings.Builder
	it := f.Iter()
	for it.Next() {
		b.WriteString(it.Subfield().Value)
	}
	if err := it.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Format is like Value but prettier. Subfield values are separated by a
// space, and in subject fields the form, general, chronological and
// geographic subdivisions ($v $x $y $z) are preceded by " -- ".
func (f *Field) Format() (string, error) {
	if f.kind == ControlField {
		return f.data, nil
	}

	subject := f.IsSubjectField()

	var b strings.Builder
	it := f.Iter()
	for it.Next() {
		sf := it.Subfield()
		if subject && strings.IndexByte(subdivisionCodes, sf.Code) >= 0 {
			b.WriteString(" -- ")
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(sf.Value)
	}
	if err := it.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}
