package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"autoloader/internal/metadata"
)

func lintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check model metadata without generating anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.models()
			if err != nil {
				return err
			}
			svc, err := a.service(reg, false)
			if err != nil {
				return err
			}

			issues := metadata.Lint(reg, svc.Checker())
			out := cmd.OutOrStdout()
			for _, i := range issues {
				tag := color.New(color.FgRed).Sprint("ERROR")
				if i.Severity == metadata.SeverityWarning {
					tag = color.New(color.FgYellow).Sprint("WARN ")
				}
				fmt.Fprintf(out, "  %s [%s] %s\n", tag, i.Code, i)
			}

			blocking := metadata.Blocking(issues)
			if len(blocking) > 0 {
				return fmt.Errorf("%d blocking issue(s) in %d model(s)", len(blocking), reg.Len())
			}
			fmt.Fprintf(out, "%s %d model(s), %d warning(s)\n", color.New(color.FgGreen).Sprint("OK"), reg.Len(), len(issues))
			return nil
		},
	}
}
