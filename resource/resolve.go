package resource

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
)

// TypeNames builds the type name table of a package. The table is
// 1-based: element i names type id i+1.
func TypeNames(pkg *arsc.Package) ([]string, error) {
	if pkg.TypeStrings == nil {
		return nil, fmt.Errorf("resource: package %#02x has no type string pool", pkg.ID())
	}

	names := make([]string, pkg.TypeStrings.Len())
	for i, entry := range pkg.TypeStrings.Entries {
		name, err := DecodeString(entry, pkg.TypeStrings.IsUTF8())
		if err != nil {
			return nil, fmt.Errorf("resource: failed to decode type name %d: %w", i, err)
		}
		names[i] = name
	}
	return names, nil
}

// KeyRange computes the half-open range [first, last) of key string
// indices belonging to the given type id. The range is the sum of the
// entry counts declared by the preceding type specs, in table order.
func KeyRange(pkg *arsc.Package, typeID uint8) (first, last int, err error) {
	if typeID < 1 {
		return 0, 0, fmt.Errorf("%w: type id must be positive", ErrMalformedID)
	}
	if int(typeID) > len(pkg.Types) {
		return 0, 0, fmt.Errorf("%w: type id %#02x", ErrTypeNotFound, typeID)
	}

	for _, group := range pkg.Types[:typeID-1] {
		first += int(group.Spec.EntryCount)
	}
	last = first + int(pkg.Types[typeID-1].Spec.EntryCount)
	return first, last, nil
}

// keySlice returns the key pool entries in [first, last), clamped to the
// pool bounds.
func keySlice(pkg *arsc.Package, first, last int) []arsc.StringEntry {
	if pkg.KeyStrings == nil {
		return nil
	}

	n := pkg.KeyStrings.Len()
	if first < 0 {
		first = 0
	}
	if first > n {
		first = n
	}
	if last > n {
		last = n
	}
	if last < first {
		last = first
	}
	return pkg.KeyStrings.Entries[first:last]
}

// Keys returns the key names of one type in one package, in pool order.
// The entry component of an identifier indexes this slice.
func Keys(t *arsc.Table, packageID, typeID uint8) ([]string, error) {
	pkg := t.Package(packageID)
	if pkg == nil {
		return nil, fmt.Errorf("%w: %#02x", ErrPackageNotFound, packageID)
	}

	first, last, err := KeyRange(pkg, typeID)
	if err != nil {
		return nil, err
	}

	entries := keySlice(pkg, first, last)
	keys := make([]string, len(entries))
	for i, entry := range entries {
		key, err := DecodeString(entry, pkg.KeyStrings.IsUTF8())
		if err != nil {
			return nil, fmt.Errorf("resource: failed to decode key name %d: %w", first+i, err)
		}
		keys[i] = key
	}
	return keys, nil
}

// Resolve maps a resource identifier to its symbolic name using the
// given table.
func Resolve(t *arsc.Table, id ID) (Name, error) {
	pkg := t.Package(id.PackageID())
	if pkg == nil {
		return Name{}, fmt.Errorf("%w: %#02x", ErrPackageNotFound, id.PackageID())
	}

	typeNames, err := TypeNames(pkg)
	if err != nil {
		return Name{}, err
	}
	typeID := int(id.TypeID())
	if typeID < 1 || typeID > len(typeNames) {
		return Name{}, fmt.Errorf("%w: type id %#02x in %s", ErrTypeNotFound, id.TypeID(), id)
	}

	first, last, err := KeyRange(pkg, id.TypeID())
	if err != nil {
		return Name{}, err
	}
	keys := keySlice(pkg, first, last)
	entry := int(id.EntryID())
	if entry >= len(keys) {
		return Name{}, fmt.Errorf("%w: entry %#04x of type %#02x in %s",
			ErrKeyIndexOutOfRange, id.EntryID(), id.TypeID(), id)
	}

	key, err := DecodeString(keys[entry], pkg.KeyStrings.IsUTF8())
	if err != nil {
		return Name{}, fmt.Errorf("resource: failed to decode key name: %w", err)
	}

	pkgName, err := PackageName(pkg)
	if err != nil {
		return Name{}, err
	}

	name := Name{Package: pkgName, Type: typeNames[typeID-1], Key: key}

	Logger().Debug("resolved identifier",
		zap.Stringer("id", id),
		zap.String("package", name.Package),
		zap.String("type", name.Type),
		zap.String("key", name.Key))

	return name, nil
}

// PackageInfo summarizes one package for listings.
type PackageInfo struct {
	ID    uint8    `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Types []string `json:"types" yaml:"types"`
}

// Packages summarizes every package in the table, in table order.
func Packages(t *arsc.Table) ([]PackageInfo, error) {
	infos := make([]PackageInfo, 0, len(t.Packages))
	for _, pkg := range t.Packages {
		name, err := PackageName(pkg)
		if err != nil {
			return nil, err
		}
		types, err := TypeNames(pkg)
		if err != nil {
			return nil, err
		}
		infos = append(infos, PackageInfo{ID: pkg.ID(), Name: name, Types: types})
	}
	return infos, nil
}
