// Package cli — команды autoloader: generate, lint, show, serve.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"autoloader/internal/config"
	"autoloader/internal/logging"
)

// app — общее состояние команд: конфигурация и логгер после разбора флагов.
type app struct {
	configPath string
	cfg        config.Config
	log        *zap.Logger
}

// Root собирает дерево команд.
func Root() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "autoloader",
		Short: "Generate TYPO3 table DDL and TCA from model metadata",
		Long: `autoloader reads model metadata (YAML), merges behavior modules
(enable fields, language, workspaces, timestamps, soft delete, sorting) with the
declared fields and writes ext_tables.sql and Configuration/TCA per extension.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "autoloader.json", "Path to config JSON")
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(generateCmd(a))
	root.AddCommand(lintCmd(a))
	root.AddCommand(showCmd(a))
	root.AddCommand(serveCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}
