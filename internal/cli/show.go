package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"autoloader/internal/generate"
	"autoloader/internal/metadata"
	"autoloader/internal/smartobject"
	"autoloader/internal/tca"
)

func showCmd(a *app) *cobra.Command {
	var (
		sqlOnly, tcaOnly bool
		extension        string
	)

	cmd := &cobra.Command{
		Use:   "show <table>",
		Short: "Print DDL and TCA for one table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := tca.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}
			reg, err := a.models()
			if err != nil {
				return err
			}
			svc, err := a.service(reg, false)
			if err != nil {
				return err
			}

			// таблицу хоста могут дополнять несколько моделей, поэтому строим как generate
			t, err := pickTable(generate.Run(reg, svc, a.log), extension, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !tcaOnly {
				fmt.Fprint(out, t.SQL)
			}
			if !sqlOnly {
				if !tcaOnly {
					fmt.Fprintln(out)
				}
				return tca.Encode(out, t.TCA, format)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sqlOnly, "sql", false, "Print only the DDL")
	cmd.Flags().BoolVar(&tcaOnly, "tca", false, "Print only the TCA")
	cmd.Flags().StringVar(&extension, "extension", "", "Extension key, when several extensions extend the table")
	cmd.MarkFlagsMutuallyExclusive("sql", "tca")
	return cmd
}

func pickTable(res *generate.Result, extension, name string) (*smartobject.Table, error) {
	var (
		t  *smartobject.Table
		ok bool
	)
	if extension != "" {
		t, ok = res.TableIn(extension, name)
	} else {
		t, ok = res.Table(name)
	}
	if ok {
		return t, nil
	}
	for _, f := range res.Failures {
		if f.Table == name && (extension == "" || f.Extension == extension) {
			return nil, fmt.Errorf("table %q: %w", name, f.Unwrap())
		}
	}
	return nil, fmt.Errorf("table %q: %w", name, metadata.ErrModelNotFound)
}
