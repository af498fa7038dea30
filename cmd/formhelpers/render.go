package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formhelpers/pkg/locale"
)

func renderCmd(opts *appOptions) *cobra.Command {
	var (
		code   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the preview page to stdout or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			locales := a.renderer.Locales()
			if code == "" {
				code = locale.Default(locales)
			}
			if !locale.Contains(code, locales) {
				return fmt.Errorf("locale %q is not configured (have %v)", code, locales.Locales())
			}

			if output == "" {
				return a.renderer.Render(cmd.OutOrStdout(), a.fixture, code)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := a.renderer.Render(file, a.fixture, code); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Preview written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&code, "locale", "l", "", "page locale (defaults to the first configured locale)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
