package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("logger initialized")
}

func main() {
	initLogger()
	defer logger.Close()

	InitGlobal()
	InitRegistry()
	InitDefaultData()

	log := logger.GetAppLogger()
	app, err := InitFiberApp()
	if err != nil {
		log.Fatalf("build fiber app: %v", err)
	}

	go func() {
		address := global.MongoDB_ServerConfig.Address()
		log.WithField("address", address).Info("starting HTTP server")
		if err := app.Listen(address); err != nil {
			log.WithError(err).Error("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	log.WithField("signal", sig.String()).Info("shutting down")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.WithError(err).Warn("server shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := database.CloseInstance(ctx, global.MongoDB_Session); err != nil {
		log.WithError(err).Warn("close database")
	}
}
