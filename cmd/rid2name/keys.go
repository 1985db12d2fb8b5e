package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/resource"
)

var keysPackage string

var keysCmd = &cobra.Command{
	Use:   "keys <arsc-file> <type>",
	Short: "List key names of one resource type",
	Long: `List the key names belonging to a resource type, in entry id order.

The type is given by numeric id (1-based) or by name. With more than one
package in the table, select one with --package.`,
	Args: cobra.ExactArgs(2),
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().StringVarP(&keysPackage, "package", "p", "", "package id to inspect")
}

func runKeys(cmd *cobra.Command, args []string) error {
	table, err := arsc.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open resource table: %w", err)
	}

	pkg, err := selectPackage(table)
	if err != nil {
		return err
	}

	typeID, err := findTypeID(pkg, args[1])
	if err != nil {
		return err
	}

	keys, err := resource.Keys(table, pkg.ID(), typeID)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	fmt.Fprintf(output, "%-8s %s\n", "ENTRY", "KEY")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 40))

	for i, key := range keys {
		fmt.Fprintf(output, "0x%04x   %s\n", i, key)
	}

	fmt.Fprintf(output, "\nTotal: %d keys\n", len(keys))
	return nil
}

// selectPackage picks the package named by --package, or the only
// package of the table when the flag is unset.
func selectPackage(table *arsc.Table) (*arsc.Package, error) {
	if keysPackage != "" {
		id, err := parsePackageID(keysPackage)
		if err != nil {
			return nil, err
		}
		pkg := table.Package(id)
		if pkg == nil {
			return nil, fmt.Errorf("package %s not found", keysPackage)
		}
		return pkg, nil
	}

	if len(table.Packages) != 1 {
		return nil, fmt.Errorf("table has %d packages, select one with --package", len(table.Packages))
	}
	return table.Packages[0], nil
}
