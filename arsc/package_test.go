package arsc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v3l0c1r4pt0r/arscutils/internal/arsctest"
	"github.com/v3l0c1r4pt0r/arscutils/internal/binread"
)

func TestParsePackage(t *testing.T) {
	data := arsctest.Package(0x7f, "com.example.app",
		[]string{"string"}, []string{"name"},
		arsctest.TypeBlock{ID: 1, EntryCount: 1, Variants: 2})

	pkg, err := parsePackage(binread.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, uint8(0x7f), pkg.ID())
	require.Equal(t, uint32(284), pkg.Header.TypeStringsOffset)
	require.Equal(t, []byte{'c', 0, 'o', 0, 'm', 0}, pkg.Header.RawName[:6])

	require.NotNil(t, pkg.TypeStrings)
	require.False(t, pkg.TypeStrings.IsUTF8())
	require.Equal(t, 1, pkg.TypeStrings.Len())

	require.NotNil(t, pkg.KeyStrings)
	require.True(t, pkg.KeyStrings.IsUTF8())
	require.Equal(t, 1, pkg.KeyStrings.Len())

	require.Len(t, pkg.Types, 1)
	group := pkg.Types[0]
	require.Equal(t, uint8(1), group.Spec.ID)
	require.Equal(t, uint32(1), group.Spec.EntryCount)
	require.Len(t, group.Spec.EntryFlags, 1)

	require.Len(t, group.Variants, 2)
	for _, v := range group.Variants {
		require.Equal(t, uint8(1), v.ID)
		require.Equal(t, uint32(1), v.EntryCount)
		require.Equal(t, uint32(52), v.EntriesStart)
		require.Len(t, v.Config, 28)
	}
}

func TestParsePackageInterleavedTypes(t *testing.T) {
	data := arsctest.PackageWith(0x7f, "app",
		[]string{"string", "drawable"}, []string{"key"},
		arsctest.TypeSpec(1, 1),
		arsctest.TypeChunk(1, 1),
		arsctest.TypeSpec(2, 1),
		arsctest.TypeChunk(2, 1),
		arsctest.TypeChunk(1, 1),
	)

	pkg, err := parsePackage(binread.NewReader(data))
	require.NoError(t, err)

	require.Len(t, pkg.Types, 2)
	require.Equal(t, uint8(1), pkg.Types[0].Spec.ID)
	require.Len(t, pkg.Types[0].Variants, 2)
	require.Equal(t, uint8(2), pkg.Types[1].Spec.ID)
	require.Len(t, pkg.Types[1].Variants, 1)
}

func TestParsePackageTypeWithoutSpec(t *testing.T) {
	data := arsctest.PackageWith(0x7f, "app",
		[]string{"string"}, []string{"key"},
		arsctest.TypeChunk(1, 1),
	)

	_, err := parsePackage(binread.NewReader(data))
	require.Error(t, err)
	require.ErrorContains(t, err, "no preceding type spec")
}

func TestParsePackageSkipsUnknownChunk(t *testing.T) {
	data := arsctest.PackageWith(0x7f, "app",
		[]string{"string"}, []string{"key"},
		arsctest.Chunk(0x0203, nil, make([]byte, 8)),
	)

	pkg, err := parsePackage(binread.NewReader(data))
	require.NoError(t, err)
	require.Empty(t, pkg.Types)
}

func TestParsePackageWrongChunkType(t *testing.T) {
	_, err := parsePackage(binread.NewReader(arsctest.Pool(true, "a")))
	require.Error(t, err)
	require.ErrorContains(t, err, "unexpected chunk type")
}

func TestParsePackageTruncated(t *testing.T) {
	data := arsctest.Package(0x7f, "app", []string{"string"}, []string{"key"})

	_, err := parsePackage(binread.NewReader(data[:100]))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParseTypeSpecBadEntryCount(t *testing.T) {
	data := arsctest.TypeSpec(1, 2)
	binary.LittleEndian.PutUint32(data[12:], 0xFFFFFF)

	_, err := parseTypeSpec(binread.NewReader(data))
	require.Error(t, err)
	require.ErrorContains(t, err, "entry count exceeds chunk size")
}

func TestParseTypeChunkBadConfigSize(t *testing.T) {
	data := arsctest.TypeChunk(1, 1)
	binary.LittleEndian.PutUint32(data[20:], 2)

	_, err := parseTypeVariant(binread.NewReader(data))
	require.Error(t, err)
	require.ErrorContains(t, err, "bad config size")
}
