package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"customfields-server/cmd/api/wire"
	"customfields-server/cmd/config"
	"customfields-server/internal/infra/async"
	"customfields-server/internal/infra/httpserver"
	"customfields-server/internal/infra/node"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	nodeInfo := node.Current()
	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{
		slog.String("version", nodeInfo.Version),
		slog.String("node_id", nodeInfo.ID),
	})
	slog.SetDefault(slog.New(handler))
	slog.Info("custom fields server is initializing", slog.String("ip", nodeInfo.IPAddress))
	slog.Debug("config loaded", "data", config)

	shutdownOtel := startOTel(nodeInfo)

	httpServer := httpserver.NewServer(
		httpserver.ServerConfig{
			Address:        config.HTTP.Address,
			AllowedOrigins: config.HTTP.AllowedOrigins,
		},
		handleWireInjector(wire.InitializeFieldDefinitionController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeFieldValueController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeColumnConfigurationController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeStatsController()).(httpserver.Controller),
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	var wg sync.WaitGroup
	if config.Maintenance.StatsSchedule != "" {
		wg.Add(1)
		go handleWireInjector(wire.InitializeStatsReportWorker()).(async.Worker).Run(appCtx, wg.Done)
	}

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()
	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel providers", slog.Any("error", err))
	}

	cancelFn()
	wg.Wait()
	slog.Info("good bye!!!")
	os.Exit(0)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
