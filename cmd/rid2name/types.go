package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/resource"
)

var typesPackage string

var typesCmd = &cobra.Command{
	Use:   "types <arsc-file>",
	Short: "List resource types in the resource table",
	Long: `List the resource types of each package, with their numeric ids.

Type ids are 1-based; the id shown is the type component a resource
identifier carries in bits 23-16.`,
	Args: cobra.ExactArgs(1),
	RunE: runTypes,
}

func init() {
	typesCmd.Flags().StringVarP(&typesPackage, "package", "p", "", "only show types of this package id")
}

func runTypes(cmd *cobra.Command, args []string) error {
	table, err := arsc.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open resource table: %w", err)
	}

	var want uint8
	if typesPackage != "" {
		want, err = parsePackageID(typesPackage)
		if err != nil {
			return err
		}
	}

	found := false
	for _, pkg := range table.Packages {
		if typesPackage != "" && pkg.ID() != want {
			continue
		}
		found = true

		name, err := resource.PackageName(pkg)
		if err != nil {
			return fmt.Errorf("failed to decode package name: %w", err)
		}
		names, err := resource.TypeNames(pkg)
		if err != nil {
			return fmt.Errorf("failed to decode type names: %w", err)
		}

		fmt.Fprintf(output, "Package 0x%02x (%s):\n", pkg.ID(), name)
		for i, typeName := range names {
			fmt.Fprintf(output, "  0x%02x %s\n", i+1, typeName)
		}
	}

	if typesPackage != "" && !found {
		return fmt.Errorf("package %s not found", typesPackage)
	}
	return nil
}

func parsePackageID(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid package id: %s", s)
	}
	return uint8(v), nil
}

// findTypeID maps a type given by numeric id or by name to its id.
func findTypeID(pkg *arsc.Package, s string) (uint8, error) {
	if v, err := strconv.ParseUint(s, 0, 8); err == nil && v > 0 {
		return uint8(v), nil
	}

	names, err := resource.TypeNames(pkg)
	if err != nil {
		return 0, fmt.Errorf("failed to decode type names: %w", err)
	}
	for i, name := range names {
		if name == s {
			return uint8(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown type: %s", s)
}
