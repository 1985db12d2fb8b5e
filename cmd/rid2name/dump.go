package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/resource"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump <arsc-file>",
	Short: "Dump the resource table structure",
	Long: `Dump the name structure of a resource table: every package, type
and key it defines.

Supported formats:
  - text: Human-readable text (default)
  - json: JSON format
  - yaml: YAML format`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format (text, json, yaml)")
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	table, err := arsc.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open resource table: %w", err)
	}

	dump, err := buildDump(path, table)
	if err != nil {
		return fmt.Errorf("failed to build dump: %w", err)
	}

	switch effectiveFormat(cmd, dumpFormat) {
	case "text":
		return dumpText(dump)
	case "json":
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(dump)
	case "yaml":
		data, err := yaml.Marshal(dump)
		if err != nil {
			return fmt.Errorf("failed to marshal dump: %w", err)
		}
		_, err = output.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s", dumpFormat)
	}
}

type TableDump struct {
	File     string        `json:"file" yaml:"file"`
	Size     uint32        `json:"size" yaml:"size"`
	Strings  int           `json:"strings" yaml:"strings"`
	Packages []PackageDump `json:"packages" yaml:"packages"`
}

type PackageDump struct {
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Types []TypeDump `json:"types" yaml:"types"`
}

type TypeDump struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Entries uint32   `json:"entries" yaml:"entries"`
	Configs int      `json:"configs" yaml:"configs"`
	Keys    []string `json:"keys" yaml:"keys"`
}

func buildDump(path string, table *arsc.Table) (*TableDump, error) {
	dump := &TableDump{File: path, Size: table.Header.Size}
	if table.Strings != nil {
		dump.Strings = table.Strings.Len()
	}

	for _, pkg := range table.Packages {
		name, err := resource.PackageName(pkg)
		if err != nil {
			return nil, err
		}
		typeNames, err := resource.TypeNames(pkg)
		if err != nil {
			return nil, err
		}

		pd := PackageDump{ID: fmt.Sprintf("0x%02x", pkg.ID()), Name: name}
		for i, group := range pkg.Types {
			typeID := uint8(i + 1)

			keys, err := resource.Keys(table, pkg.ID(), typeID)
			if err != nil {
				return nil, err
			}

			typeName := ""
			if i < len(typeNames) {
				typeName = typeNames[i]
			}

			pd.Types = append(pd.Types, TypeDump{
				ID:      fmt.Sprintf("0x%02x", typeID),
				Name:    typeName,
				Entries: group.Spec.EntryCount,
				Configs: len(group.Variants),
				Keys:    keys,
			})
		}
		dump.Packages = append(dump.Packages, pd)
	}

	return dump, nil
}

func dumpText(dump *TableDump) error {
	fmt.Fprintf(output, "Resource table: %s (%d bytes, %d global strings)\n",
		dump.File, dump.Size, dump.Strings)

	for _, pkg := range dump.Packages {
		fmt.Fprintf(output, "\nPackage %s: %s\n", pkg.ID, pkg.Name)
		for _, typ := range pkg.Types {
			fmt.Fprintf(output, "  %s %s (%d entries, %d configs)\n",
				typ.ID, typ.Name, typ.Entries, typ.Configs)
			for i, key := range typ.Keys {
				fmt.Fprintf(output, "    0x%04x %s\n", i, key)
			}
		}
	}
	return nil
}
