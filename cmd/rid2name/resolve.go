package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/buger/jsonparser"
	"github.com/spf13/cobra"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/resource"
)

var (
	resolveFormat string
	resolveInput  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <arsc-file> [id...]",
	Short: "Resolve resource identifiers to symbolic names",
	Long: `Resolve numeric resource identifiers to their symbolic names.

Identifiers are given in decimal or 0x-prefixed hexadecimal. With
--input, identifiers are read from a JSON array of strings or numbers
instead of (or in addition to) the command line.

Supported formats:
  - fqdn: package.R.type.key (default)
  - xmlid: @package:type/key
  - json: one JSON object per identifier`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "fqdn", "output format (fqdn, xmlid, json)")
	resolveCmd.Flags().StringVar(&resolveInput, "input", "", "read identifiers from a JSON array file")
}

func runResolve(cmd *cobra.Command, args []string) error {
	table, err := arsc.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open resource table: %w", err)
	}

	ids := args[1:]
	if resolveInput != "" {
		fromFile, err := readIDFile(resolveInput)
		if err != nil {
			return err
		}
		ids = append(ids, fromFile...)
	}
	if len(ids) == 0 {
		return fmt.Errorf("no identifiers given")
	}

	format := effectiveFormat(cmd, resolveFormat)

	for _, arg := range ids {
		id, err := resource.ParseID(arg)
		if err != nil {
			return err
		}
		if err := id.Validate(); err != nil {
			return err
		}

		name, err := resource.Resolve(table, id)
		if err != nil {
			return err
		}
		if err := printName(id, name, format); err != nil {
			return err
		}
	}
	return nil
}

// resolvedName is the JSON shape of one resolved identifier.
type resolvedName struct {
	ID string `json:"id"`
	resource.Name
}

func printName(id resource.ID, name resource.Name, format string) error {
	switch format {
	case "fqdn":
		fmt.Fprintln(output, name.FQDN())
	case "xmlid":
		fmt.Fprintln(output, name.XMLID())
	case "json":
		return json.NewEncoder(output).Encode(resolvedName{ID: id.String(), Name: name})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}

// readIDFile reads identifiers from a JSON array of strings or numbers.
func readIDFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identifier file: %w", err)
	}

	var ids []string
	var bad bool
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		switch dataType {
		case jsonparser.String, jsonparser.Number:
			ids = append(ids, string(value))
		default:
			bad = true
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse identifier file: %w", err)
	}
	if bad {
		return nil, fmt.Errorf("identifier file must be an array of strings or numbers")
	}
	return ids, nil
}
