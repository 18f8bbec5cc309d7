package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"l10n-manager/core/loader"
	"l10n-manager/core/logger"
	"l10n-manager/core/middleware/auth"
	"l10n-manager/core/middleware/rayid"
	"l10n-manager/feature/localize"
	"l10n-manager/feature/localized"
	"l10n-manager/feature/publish"
	"l10n-manager/feature/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the localization server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Configuration and logger
		e, err := newEnv(resDir, "")
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Optional collaborators
		hist := e.historyFeature(ctx)
		pub, err := e.publisher(ctx)
		if err != nil {
			logg.Warn("Publishing disabled", zap.Error(err))
			pub = nil
		}

		// 3. Services share one cached canonical pool
		pools := e.pools(true)
		importSvc, err := e.importService(pools, hist, pub)
		if err != nil {
			logg.Fatal("Failed to create import service", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           e.cfg.Server.ReadTimeout(),
		})

		// 4. Feature loader
		mgr := loader.NewManager(logg)
		mgr.Register(localized.NewFeature(importSvc))
		mgr.Register(localize.NewFeature(localize.NewService(pools, e.reader, logg)))
		mgr.Register(validate.NewFeature(validate.NewService(e.layout, logg)))
		mgr.Register(hist)
		mgr.Register(publish.NewFeature(pub, e.cfg.Publish.Enabled))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
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

		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", e.cfg.Server.Port),
				zap.String("res_dir", e.cfg.Resources.ResDir))
			if err := app.Listen(":" + e.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
