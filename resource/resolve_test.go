package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/internal/arsctest"
)

func demoTable(t *testing.T) *arsc.Table {
	t.Helper()
	table, err := arsc.Decode(arsctest.Demo())
	require.NoError(t, err)
	return table
}

func TestResolve(t *testing.T) {
	table := demoTable(t)

	tests := []struct {
		id   ID
		want Name
	}{
		{0x7f010000, Name{Package: "app", Type: "string", Key: "app_name"}},
		{0x7f010001, Name{Package: "app", Type: "string", Key: "hello"}},
		{0x7f020000, Name{Package: "app", Type: "drawable", Key: "icon"}},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			got, err := Resolve(table, tt.id)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	table := demoTable(t)

	tests := []struct {
		name string
		id   ID
		want error
	}{
		{"unknown package", 0x80010000, ErrPackageNotFound},
		{"type past table", 0x7f030000, ErrTypeNotFound},
		{"zero type", 0x7f000000, ErrTypeNotFound},
		{"entry past type keys", 0x7f010002, ErrKeyIndexOutOfRange},
		{"entry far out", 0x7f02ffff, ErrKeyIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(table, tt.id)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolveMultiplePackages(t *testing.T) {
	system := arsctest.Package(0x01, "android",
		[]string{"attr"}, []string{"theme"},
		arsctest.TypeBlock{ID: 1, EntryCount: 1, Variants: 1})
	app := arsctest.Package(0x7f, "app",
		[]string{"string"}, []string{"app_name"},
		arsctest.TypeBlock{ID: 1, EntryCount: 1, Variants: 1})

	table, err := arsc.Decode(arsctest.Table(arsctest.Pool(true, "v"), system, app))
	require.NoError(t, err)

	name, err := Resolve(table, 0x01010000)
	require.NoError(t, err)
	require.Equal(t, "android.R.attr.theme", name.FQDN())

	name, err = Resolve(table, 0x7f010000)
	require.NoError(t, err)
	require.Equal(t, "@app:string/app_name", name.XMLID())
}

func TestTypeNames(t *testing.T) {
	table := demoTable(t)

	names, err := TypeNames(table.Package(0x7f))
	require.NoError(t, err)
	require.Equal(t, []string{"string", "drawable"}, names)
}

func TestKeyRange(t *testing.T) {
	pkg := demoTable(t).Package(0x7f)

	first, last, err := KeyRange(pkg, 1)
	require.NoError(t, err)
	require.Equal(t, 0, first)
	require.Equal(t, 2, last)

	first, last, err = KeyRange(pkg, 2)
	require.NoError(t, err)
	require.Equal(t, 2, first)
	require.Equal(t, 3, last)

	_, _, err = KeyRange(pkg, 3)
	require.ErrorIs(t, err, ErrTypeNotFound)

	_, _, err = KeyRange(pkg, 0)
	require.ErrorIs(t, err, ErrMalformedID)
}

func TestKeys(t *testing.T) {
	table := demoTable(t)

	keys, err := Keys(table, 0x7f, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"app_name", "hello"}, keys)

	keys, err = Keys(table, 0x7f, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"icon"}, keys)

	_, err = Keys(table, 0x33, 1)
	require.ErrorIs(t, err, ErrPackageNotFound)
}

func TestKeysClampedToPool(t *testing.T) {
	// the type spec declares five entries but the key pool only holds one
	pkg := arsctest.Package(0x7f, "app",
		[]string{"string"}, []string{"only"},
		arsctest.TypeBlock{ID: 1, EntryCount: 5, Variants: 1})
	table, err := arsc.Decode(arsctest.Table(arsctest.Pool(true, "v"), pkg))
	require.NoError(t, err)

	keys, err := Keys(table, 0x7f, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"only"}, keys)

	_, err = Resolve(table, 0x7f010003)
	require.ErrorIs(t, err, ErrKeyIndexOutOfRange)
}

func TestPackages(t *testing.T) {
	table := demoTable(t)

	infos, err := Packages(table)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, uint8(0x7f), infos[0].ID)
	require.Equal(t, "app", infos[0].Name)
	require.Equal(t, []string{"string", "drawable"}, infos[0].Types)
}

func TestNameJSON(t *testing.T) {
	data, err := json.Marshal(Name{Package: "app", Type: "string", Key: "app_name"})
	require.NoError(t, err)
	require.JSONEq(t, `{"package":"app","type":"string","key":"app_name"}`, string(data))
}
