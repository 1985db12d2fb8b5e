package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/resource"
)

var packagesCmd = &cobra.Command{
	Use:   "packages <arsc-file>",
	Short: "List packages in the resource table",
	Long:  `List every package in a resource table with its id, name and type names.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPackages,
}

func runPackages(cmd *cobra.Command, args []string) error {
	table, err := arsc.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open resource table: %w", err)
	}

	infos, err := resource.Packages(table)
	if err != nil {
		return fmt.Errorf("failed to list packages: %w", err)
	}

	fmt.Fprintf(output, "%-6s %-40s %s\n", "ID", "NAME", "TYPES")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 80))

	for _, info := range infos {
		fmt.Fprintf(output, "0x%02x   %-40s %s\n",
			info.ID, info.Name, strings.Join(info.Types, ", "))
	}

	fmt.Fprintf(output, "\nTotal: %d packages\n", len(infos))
	return nil
}
