package resource

import (
	"encoding/binary"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/internal/arsctest"
)

// utf16le encodes s as little-endian UTF-16 bytes without a terminator.
func utf16le(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[2*i:], u)
	}
	return out
}

func TestDecodeStringUTF8(t *testing.T) {
	tests := []struct {
		name    string
		entry   arsc.StringEntry
		want    string
		wantErr bool
	}{
		{name: "ascii", entry: arsc.StringEntry{Length: 5, Raw: []byte("hello")}, want: "hello"},
		{name: "empty", entry: arsc.StringEntry{}, want: ""},
		{name: "multibyte", entry: arsc.StringEntry{Length: 6, Raw: []byte("naïve")}, want: "naïve"},
		{name: "nul padding trimmed", entry: arsc.StringEntry{Length: 7, Raw: []byte("\x00hello\x00")}, want: "hello"},
		{name: "length mismatch", entry: arsc.StringEntry{Length: 9, Raw: []byte("abc")}, wantErr: true},
		{name: "invalid utf8", entry: arsc.StringEntry{Length: 2, Raw: []byte{0xff, 0xfe}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.entry, true)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrStringDecode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeStringUTF16(t *testing.T) {
	tests := []struct {
		name    string
		entry   arsc.StringEntry
		want    string
		wantErr bool
	}{
		{name: "ascii", entry: arsc.StringEntry{Length: 5, Raw: utf16le("hello")}, want: "hello"},
		{name: "empty", entry: arsc.StringEntry{}, want: ""},
		{name: "non-bmp", entry: arsc.StringEntry{Length: 2, Raw: utf16le("😀")}, want: "😀"},
		{name: "odd payload", entry: arsc.StringEntry{Length: 2, Raw: []byte{1, 2, 3}}, wantErr: true},
		{name: "unit mismatch", entry: arsc.StringEntry{Length: 5, Raw: utf16le("hi")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.entry, false)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrStringDecode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeStringEncodingsAgree(t *testing.T) {
	for _, text := range []string{"app_name", "świat", "😀", ""} {
		utf8Entry := arsc.StringEntry{Length: len(text), Raw: []byte(text)}
		utf16Raw := utf16le(text)
		utf16Entry := arsc.StringEntry{Length: len(utf16Raw) / 2, Raw: utf16Raw}

		fromUTF8, err := DecodeString(utf8Entry, true)
		require.NoError(t, err)
		fromUTF16, err := DecodeString(utf16Entry, false)
		require.NoError(t, err)

		require.Equal(t, fromUTF8, fromUTF16)
		require.Equal(t, text, fromUTF8)
	}
}

func TestPackageName(t *testing.T) {
	pkg := &arsc.Package{}
	copy(pkg.Header.RawName[:], arsctest.PackageName("com.example.app"))

	name, err := PackageName(pkg)
	require.NoError(t, err)
	require.Equal(t, "com.example.app", name)
}

func TestPackageNameEmpty(t *testing.T) {
	name, err := PackageName(&arsc.Package{})
	require.NoError(t, err)
	require.Equal(t, "", name)
}

func TestPackageNameNoTerminator(t *testing.T) {
	pkg := &arsc.Package{}
	copy(pkg.Header.RawName[:], arsctest.PackageName(strings.Repeat("a", 128)))

	_, err := PackageName(pkg)
	require.ErrorIs(t, err, ErrStringDecode)
}
