package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &appOptions{}

	rootCmd := &cobra.Command{
		Use:   "formhelpers",
		Short: "Preview locale-aware form helpers",
		Long: `formhelpers renders a fixture through the html and form helpers.

The fixture describes a model, the fields to render and a validation
error payload. Pages are rendered with the embedded layout unless
--templates points at a directory holding a layout.tpl.

Examples:
  formhelpers render --locale sv
  formhelpers render --fixture article.yaml --config formhelpers.yaml
  formhelpers serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&opts.fixturePath, "fixture", "f", "", "YAML fixture (defaults to the built-in article)")
	flags.StringVar(&opts.templatesDir, "templates", "", "directory with a layout.tpl overriding the embedded one")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "development logging at debug level")

	rootCmd.AddCommand(
		renderCmd(opts),
		serveCmd(opts),
		versionCmd(),
	)
	return rootCmd
}
