package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josuecastillodev/ecommerce/app/cmd"
	"github.com/josuecastillodev/ecommerce/app/configs"
	"github.com/josuecastillodev/ecommerce/app/middlewares"
	"github.com/josuecastillodev/ecommerce/app/routes"
	"go.uber.org/zap"
)

func main() {
	env := configs.LoadEnv()

	logger, err := configs.NewLogger(env)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) > 1 {
		if err := cmd.RunCli(ctx, env, logger, os.Args); err != nil {
			logger.Fatal("command failed", zap.Error(err))
		}
		return
	}

	if env.AdminAPIToken == "" {
		logger.Warn("ADMIN_API_TOKEN is empty, admin routes will reject every request")
	}

	db, err := configs.OpenConnection(env, logger)
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	logger.Info("database connected", zap.String("driver", env.DBDriver))

	router := routes.NewRouter(db, env, logger)

	server := &http.Server{
		Addr:              env.Port,
		Handler:           middlewares.MethodOverrideMiddleware(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("server starting", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
