package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"autoloader/internal/generate"
	"autoloader/internal/tca"
)

var errGenerationFailed = errors.New("some tables failed to generate")

func generateCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write ext_tables.sql and TCA files for all models",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := tca.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}
			reg, err := a.models()
			if err != nil {
				return err
			}
			svc, err := a.service(reg, !dryRun)
			if err != nil {
				return err
			}

			res := generate.Run(reg, svc, a.log)
			out := cmd.OutOrStdout()

			if !dryRun {
				written, err := generate.Write(a.cfg.OutDir, res, format)
				if err != nil {
					return fmt.Errorf("write artifacts: %w", err)
				}
				for _, w := range written {
					fmt.Fprintf(out, "  %s %s\n", color.New(color.FgGreen).Sprint("WRITE"), w.Path)
				}
			}
			for _, t := range res.Tables {
				kind := "CREATE "
				if t.Extends {
					kind = "EXTEND "
				}
				fmt.Fprintf(out, "  %s %s (%s)\n", color.New(color.FgBlue).Sprint(kind), t.Name, strings.Join(t.Classes, ", "))
			}
			for _, f := range res.Failures {
				fmt.Fprintf(out, "  %s %s: %s\n", color.New(color.FgRed).Sprint("FAILED "), f.Class, f.Error)
			}
			fmt.Fprintf(out, "\nBuild %s: %d tables, %d failed\n", res.ID, len(res.Tables), len(res.Failures))

			if len(res.Failures) > 0 {
				return fmt.Errorf("%w: %w", errGenerationFailed, res.Err())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build artifacts without writing files")
	return cmd
}
