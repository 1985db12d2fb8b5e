package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/resource"
)

var infoCmd = &cobra.Command{
	Use:   "info <arsc-file>",
	Short: "Display resource table information",
	Long:  `Display general information about a resource table: its string pools, packages, types and entry counts.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	table, err := arsc.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open resource table: %w", err)
	}

	fmt.Fprintf(output, "Resource table: %s\n", path)
	fmt.Fprintf(output, "Size: %d bytes\n", table.Header.Size)
	if table.Strings != nil {
		fmt.Fprintf(output, "Global strings: %d (%s)\n", table.Strings.Len(), poolEncoding(table.Strings))
	}
	fmt.Fprintf(output, "Packages: %d\n", len(table.Packages))

	for _, pkg := range table.Packages {
		name, err := resource.PackageName(pkg)
		if err != nil {
			return fmt.Errorf("failed to decode package name: %w", err)
		}

		entries, variants := 0, 0
		for _, group := range pkg.Types {
			entries += int(group.Spec.EntryCount)
			variants += len(group.Variants)
		}

		fmt.Fprintf(output, "\nPackage 0x%02x: %s\n", pkg.ID(), name)
		if pkg.TypeStrings != nil {
			fmt.Fprintf(output, "  Type strings: %d (%s)\n", pkg.TypeStrings.Len(), poolEncoding(pkg.TypeStrings))
		}
		if pkg.KeyStrings != nil {
			fmt.Fprintf(output, "  Key strings: %d (%s)\n", pkg.KeyStrings.Len(), poolEncoding(pkg.KeyStrings))
		}
		fmt.Fprintf(output, "  Types: %d\n", len(pkg.Types))
		fmt.Fprintf(output, "  Entries: %d\n", entries)
		fmt.Fprintf(output, "  Configurations: %d\n", variants)
	}

	return nil
}

func poolEncoding(p *arsc.StringPool) string {
	if p.IsUTF8() {
		return "UTF-8"
	}
	return "UTF-16"
}
