package marc

import (
	"bytes"
	"strings"
	"testing"
)

func benchField(b *testing.B, n int) *Field {
	subfields := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		subfields = append(subfields, "a", "The pragmatic programmer : from journeyman to master /")
	}
	f := mustField(b, "245", []byte{'1', '0'}, subfields, "")
	return f
}

func BenchmarkMarshalMARC21_1(b *testing.B) {
	f := benchField(b, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.MarshalMARC21()
	}
}

func BenchmarkMarshalMARC21_100(b *testing.B) {
	f := benchField(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.MarshalMARC21()
	}
}

func BenchmarkMarshalText_100(b *testing.B) {
	f := benchField(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.MarshalText()
	}
}

func BenchmarkUnmarshalMARC21_100(b *testing.B) {
	data, err := benchField(b, 100).MarshalMARC21()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = UnmarshalMARC21("245", data)
	}
}

func BenchmarkDecode_1000(b *testing.B) {
	line := benchField(b, 3).String() + "\r\n"
	data := strings.Repeat(line, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = NewDecoder(bytes.NewReader([]byte(data))).DecodeAll()
	}
}

func BenchmarkFormat_100(b *testing.B) {
	f := benchField(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format()
	}
}
