package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDComponents(t *testing.T) {
	tests := []struct {
		id    ID
		pkg   uint8
		typ   uint8
		entry uint16
	}{
		{0x7f020001, 0x7f, 0x02, 0x0001},
		{0x0101fffe, 0x01, 0x01, 0xfffe},
		{0x00000000, 0x00, 0x00, 0x0000},
		{0xffffffff, 0xff, 0xff, 0xffff},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			require.Equal(t, tt.pkg, tt.id.PackageID())
			require.Equal(t, tt.typ, tt.id.TypeID())
			require.Equal(t, tt.entry, tt.id.EntryID())
			require.Equal(t, tt.id, Compose(tt.pkg, tt.typ, tt.entry))
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{name: "hex", in: "0x7f020001", want: 0x7f020001},
		{name: "decimal", in: "2130837505", want: 0x7f020001},
		{name: "octal", in: "010", want: 8},
		{name: "garbage", in: "zzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "overflow", in: "0x1ffffffff", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedID)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIDValidate(t *testing.T) {
	require.NoError(t, ID(0x7f010000).Validate())
	require.ErrorIs(t, ID(0x00010000).Validate(), ErrMalformedID)
	require.ErrorIs(t, ID(0x7f000001).Validate(), ErrMalformedID)
}

func TestIDString(t *testing.T) {
	require.Equal(t, "0x7f020001", ID(0x7f020001).String())
	require.Equal(t, "0x00000001", ID(1).String())
}
