package marc

import (
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	for _, tt := range []struct {
		name string
		tag  string
		want string
	}{
		{"Three Characters", "245", "245"},
		{"Leading Zeros", "001", "001"},
		{"Two Characters", "01", " 01"},
		{"One Character", "1", "  1"},
		{"Empty", "", "   "},
		{"Wider Than Three", "1000", "1000"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if have := normalizeTag(tt.tag); have != tt.want {
				t.Errorf("normalizeTag(%q) want %q, have %q", tt.tag, tt.want, have)
			}
		})
	}
}

func TestIsControlTag(t *testing.T) {
	for _, tt := range []struct {
		tag  string
		want bool
	}{
		{"001", true},
		{"008", true},
		{"009", true},
		{"010", false},
		{"011", false},
		{"245", false},
		{"999", false},
		{"1000", false},

		// The comparison is textual: letters sort after digits and spaces
		// sort before them.
		{"00A", true},
		{"0A0", false},
		{"  1", true},
		{" 10", true},
		{"   ", true},
	} {
		t.Run(tt.tag, func(t *testing.T) {
			if have := isControlTag(tt.tag); have != tt.want {
				t.Errorf("isControlTag(%q) want %v, have %v", tt.tag, tt.want, have)
			}
		})
	}
}

func TestIsSubjectTag(t *testing.T) {
	for _, tt := range []struct {
		tag  string
		want bool
	}{
		{"600", true},
		{"650", true},
		{"6XX", true},
		{"245", false},
		{"060", false},
		{" 65", false},
	} {
		t.Run(tt.tag, func(t *testing.T) {
			if have := isSubjectTag(tt.tag); have != tt.want {
				t.Errorf("isSubjectTag(%q) want %v, have %v", tt.tag, tt.want, have)
			}
		})
	}
}
