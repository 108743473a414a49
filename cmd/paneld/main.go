package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"decoder/internal/app"
	"decoder/internal/panel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "paneld:", err)
		os.Exit(1)
	}
}

func run() error {
	home := flag.String("home", "", "config dir (default ~/.decoder)")
	configPath := flag.String("config", "", "config file (default <home>/config.yaml)")
	listen := flag.String("listen", "", "listen address (overrides config)")
	flag.Parse()

	if *home == "" {
		h, err := app.DefaultHome()
		if err != nil {
			return err
		}
		*home = h
	}
	cfg, err := app.LoadConfig(*home, *configPath)
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Panel.Listen = *listen
	}

	log, err := app.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := app.NewWire(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer w.Close()
	if derr := w.Dict.Degraded(); derr != nil {
		log.Warn("serving with an empty user dictionary", zap.Error(derr))
	}

	h := panel.NewHandlers(w.Dict, w.Page, log.Named("panel"))
	srv := &http.Server{
		Addr:              cfg.Panel.Listen,
		Handler:           panel.Routes(h, cfg.Panel.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("panel listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	})
	return g.Wait()
}
