package main

import (
    "context"
    "errors"
    "flag"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "go.uber.org/zap"

    "irisapi/internal/api"
    "irisapi/internal/classifier"
    "irisapi/internal/config"
    "irisapi/internal/predictor"
    "irisapi/pkg/utils"
)

func main() {
    configPath := flag.String("config", "config.yaml", "configuration file")
    flag.Parse()

    cfg, err := config.Load(*configPath)
    if err != nil {
        zap.NewExample().Fatal("unable to load configuration", zap.Error(err))
    }

    logger := utils.NewLogger(cfg.Logger.Level, cfg.Logger.File)
    defer logger.Sync()

    model, err := classifier.NewLoader(cfg.Model.Path, cfg.Model.Algo).Load()
    if err != nil {
        logger.Fatal("unable to load model artifact",
            zap.String("path", cfg.Model.Path),
            zap.String("algo", cfg.Model.Algo),
            zap.Error(err),
        )
    }
    logger.Info("model loaded", zap.String("model", model.Name()), zap.String("path", cfg.Model.Path))

    p := predictor.New(model, logger)
    srv := &http.Server{
        Addr:           cfg.Server.Address,
        Handler:        api.NewRouter(p, logger).Engine(),
        ReadTimeout:    3 * time.Second,
        WriteTimeout:   3 * time.Second,
        MaxHeaderBytes: 1024 * 10,
    }

    appCtx, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer appCancel()

    go func() {
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Error("server failed", zap.Error(err))
            appCancel()
        }
    }()
    logger.Info("server listening", zap.String("address", cfg.Server.Address))
    <-appCtx.Done()

    shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer shutdownCancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("server shutdown", zap.Error(err))
        os.Exit(1)
    }
    logger.Info("server stopped")
}
