package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"reorder/core/loader"
	"reorder/core/logger"
	"reorder/core/middleware/auth"
	"reorder/core/middleware/rayid"
	"reorder/feature/integrity"
	"reorder/feature/items"
	"reorder/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "reorder/docs/swagger"
)

// @title Reorder API
// @version 1.0
// @description API for per-user reorderable item lists.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := bootstrap(context.Background())
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer a.close()
		zap.ReplaceGlobals(a.log)
		logg := a.log

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		ownerHeader := a.cfg.Server.OwnerHeaderName()

		mgr := loader.NewManager(logg)
		mgr.Register(users.NewFeature(a.db, a.engine, logg, ownerHeader))
		mgr.Register(items.NewFeature(a.engine, a.snapshots, logg, ownerHeader))
		mgr.Register(integrity.NewFeature(a.db, a.engine, a.storage, a.cfg.Storage.Bucket, a.cfg.Storage.Region, logg))

		// RayID first so every later log line carries it.
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
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
