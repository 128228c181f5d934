package main

import (
	"time"

	"atrack-svr/internal/codec"
	"atrack-svr/internal/config"
	"atrack-svr/internal/dispatcher"
	"atrack-svr/internal/grpcclient"
	"atrack-svr/internal/observability"
	"atrack-svr/internal/pipeline"
	"atrack-svr/internal/server"
	"atrack-svr/internal/session"
	"atrack-svr/internal/store"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	logger.Info("Starting atrack-svr...", "port", cfg.TCPPort)

	catalog := codec.DefaultCatalog()
	if cfg.FieldCatalog != "" {
		if err := catalog.LoadOverlay(cfg.FieldCatalog); err != nil {
			logger.Error("field catalog load failed", "path", cfg.FieldCatalog, "error", err)
			return
		}
	}

	if err := store.InitRedis(cfg.RedisAddr, 0); err != nil {
		logger.Error("Redis init failed", "error", err)
		return
	}

	var forwarder *grpcclient.GRPCClient
	if cfg.GRPCServer != "" {
		fw, err := grpcclient.NewGRPCClient(cfg.GRPCServer)
		if err != nil {
			logger.Error("forwarder init failed", "error", err)
			return
		}
		forwarder = fw
		defer forwarder.Close()
	}

	var pictures session.PictureStore
	if cfg.PictureStore == "s3" {
		s3Store, err := store.NewS3Store(cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey)
		if err != nil {
			logger.Error("S3 init failed", "error", err)
			return
		}
		pictures = s3Store
	} else {
		pictures = store.NewFileStore(cfg.PictureDir)
	}

	processor := pipeline.NewProcessor(forwarder, logger)
	registry := server.NewRegistry()

	go observability.StartMetricsServer(cfg.MetricsPort)
	go dispatcher.RunConsole(registry, logger)

	srv := server.New(registry, catalog, processor, pictures, session.Config{
		LivenessTimeout: time.Duration(cfg.LivenessTimeout) * time.Second,
		FormatRetry:     time.Duration(cfg.FormatRetry) * time.Second,
		BaseFields:      cfg.BaseFields,
	}, logger)

	if err := srv.Start(":" + cfg.TCPPort); err != nil {
		logger.Error("TCP server failed", "error", err)
	}
}
