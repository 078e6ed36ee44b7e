package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"node-config/core/loader"
	"node-config/core/logger"
	"node-config/core/middleware/rayid"
	"node-config/feature/nodeconfig"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the node config server",
	Long:  `Starts the HTTP server that hands out node configurations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, resolver, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(nodeconfig.NewFeature(resolver, logg))

		// RayID must be first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting node config server",
				zap.String("address", cfg.Server.Address()),
				zap.String("source", resolver.Source().Location("")),
				zap.String("format", resolver.Format().Name()),
			)
			errCh <- app.Listen(cfg.Server.Address())
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-c:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
