package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StanislavStefanov/Planes/pkg/game"
	"github.com/StanislavStefanov/Planes/server/config"
	"github.com/StanislavStefanov/Planes/server/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.Debug)
	defer logger.Log.Sync()

	g := game.NewFactory(cfg.Game.Player1, cfg.Game.Player2).
		WithMaxVessels(cfg.Game.MaxVessels).
		Create()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := NewMetrics(cfg.Server.Namespace, reg)

	sender := &Sender{}
	table := NewTable(g, sender)
	g.AddListener(metrics)
	g.AddListener(NewLogListener(logger.Log, g))
	g.Start()

	server := NewServer(table, sender, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go server.run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(server, w, r)
	})
	mux.Handle(cfg.Server.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	httpServer := &http.Server{Addr: cfg.Server.HTTPAddress, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Log.Infow("Server started",
		"address", cfg.Server.HTTPAddress,
		"player1", cfg.Game.Player1,
		"player2", cfg.Game.Player2,
		"max_vessels", cfg.Game.MaxVessels)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatalw("ListenAndServe", "error", err)
	}
}
