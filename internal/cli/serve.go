package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"autoloader/internal/api"
	"autoloader/internal/metadata"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve generated artifacts over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.models()
			if err != nil {
				return err
			}
			svc, err := a.service(reg, false)
			if err != nil {
				return err
			}
			if a.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			storage := api.NewStorage(reg, a.cfg.ModelsDir, svc, metadata.LoadDir, a.log)
			a.log.Info("starting server",
				zap.String("port", a.cfg.Port),
				zap.Int("models", reg.Len()),
				zap.String("build", storage.Build.ID),
			)
			return api.RunServer(":"+a.cfg.Port, storage, a.log)
		},
	}
}
