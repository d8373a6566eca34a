package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"phoneprice/config"
	phttp "phoneprice/http"
	"phoneprice/logger"
	"phoneprice/ml"
	"phoneprice/monitoring"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// 2. Load model artifacts; there is no fallback prediction path
	artifacts, err := ml.LoadArtifacts(ml.ArtifactConfig{
		ModelPath:  cfg.Model.ModelPath,
		ScalerPath: cfg.Model.ScalerPath,
	})
	if err != nil {
		zlog.Fatal("failed to load model artifacts", zap.Error(err))
	}
	predictor, err := ml.NewPredictor(artifacts)
	if err != nil {
		zlog.Fatal("failed to build predictor", zap.Error(err))
	}
	zlog.Info("model artifacts loaded",
		zap.String("model_path", cfg.Model.ModelPath),
		zap.String("scaler_path", cfg.Model.ScalerPath),
	)

	metrics := monitoring.NewMetricsCollector()
	api, err := phttp.NewAPI(predictor, cfg.Model.CacheSize, zlog, metrics)
	if err != nil {
		zlog.Fatal("failed to build API", zap.Error(err))
	}

	// 3. Start HTTP server
	server := phttp.NewServer(phttp.ServerConfig{
		Port:           cfg.Http.Port,
		Timeout:        cfg.Http.Timeout,
		AllowedOrigins: cfg.Http.AllowedOrigins,
		MaxBodyBytes:   cfg.Http.MaxBodyBytes,
	}, api, zlog, metrics)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 4. Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.Stop(); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("exiting")
}
