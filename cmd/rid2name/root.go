package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/v3l0c1r4pt0r/arscutils/arsc"
	"github.com/v3l0c1r4pt0r/arscutils/resource"
)

var (
	outputFile string
	configFile string
	verbose    bool

	output io.Writer
	config Config
)

var rootCmd = &cobra.Command{
	Use:   "rid2name",
	Short: "Android resource identifier resolver",
	Long: `rid2name maps numeric Android resource identifiers back to their
symbolic names using a compiled resource table (resources.arsc).

It can resolve single identifiers or batches of them, list the packages,
types and keys a table defines, and dump the table structure.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}

		if configFile != "" {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			config = *cfg
		}

		if verbose || config.Verbose {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			arsc.SetLogger(logger)
			resource.SetLogger(logger)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "read default settings from a YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(packagesCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(dumpCmd)
}

// effectiveFormat returns the --format value of cmd, falling back to the
// config file default when the flag was left unset.
func effectiveFormat(cmd *cobra.Command, flagValue string) string {
	if cmd != nil && !cmd.Flags().Changed("format") && config.Format != "" {
		return config.Format
	}
	return flagValue
}
