package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iburimskiy/impact-visualization/internal/config"
	"github.com/iburimskiy/impact-visualization/internal/logging"
	"github.com/iburimskiy/impact-visualization/internal/metrics"
	"github.com/iburimskiy/impact-visualization/internal/neows"
	"github.com/iburimskiy/impact-visualization/internal/server"
)

func main() {
	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		logging.NewFromEnv().Error(ctx, "loading settings", logging.Err(err))
		os.Exit(1)
	}
	log := logging.New(logging.Config{Level: settings.Log.Level, Format: settings.Log.Format})

	collector, err := metrics.New(nil)
	if err != nil {
		log.Error(ctx, "registering metrics", logging.Err(err))
		os.Exit(1)
	}
	catalog, err := neows.New(settings.NeoWs, log)
	if err != nil {
		log.Error(ctx, "creating NeoWs client", logging.Err(err))
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr: settings.Server.Addr,
		Handler: server.SetupRouter(server.Deps{
			Catalog: catalog,
			Metrics: collector,
			Log:     log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(ctx, "listening", logging.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server stopped", logging.Err(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "shutdown", logging.Err(err))
	}
}
