package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/tiltproof/holdembrain/internal/betting"
	"github.com/tiltproof/holdembrain/internal/config"
	"github.com/tiltproof/holdembrain/internal/oracle"
	"github.com/tiltproof/holdembrain/internal/player"
	"github.com/tiltproof/holdembrain/internal/ranker"
	"github.com/tiltproof/holdembrain/internal/strength"
)

// ServeCmd runs the player HTTP service.
type ServeCmd struct {
	Listen    string `help:"Listen address (overrides env)" placeholder:"ADDR"`
	OracleURL string `help:"Ranking oracle base URL (overrides env)" placeholder:"URL"`
	Strategy  string `help:"Strategy HCL file" type:"path" placeholder:"FILE"`
	Debug     bool   `help:"Enable debug logging"`
}

func (cmd *ServeCmd) Run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cmd.Listen != "" {
		cfg.Listen = cmd.Listen
	}
	if cmd.OracleURL != "" {
		cfg.OracleURL = cmd.OracleURL
		cfg.OracleEnabled = true
	}

	logger := newLogger(cfg.LogLevel, cmd.Debug)

	strategy, err := config.LoadStrategy(cmd.Strategy)
	if err != nil {
		return err
	}

	var oracleClient ranker.OracleClient
	if cfg.OracleEnabled {
		oracleClient = oracle.New(cfg.OracleURL, logger, quartz.NewReal())
		logger.Info("Ranking oracle enabled", "url", cfg.OracleURL)
	} else {
		logger.Info("Ranking oracle disabled; evaluating locally")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	handRanker := ranker.New(oracleClient, logger)
	classifier := strength.New(strategy.ClassifierConfig(), handRanker, logger)
	strategyEngine := betting.New(strategy.BettingConfig(), rand.New(rand.NewSource(seed)), logger)
	brain := player.NewBrain(handRanker, classifier, strategyEngine, logger)
	service := player.NewService(brain, logger, version)

	server := &http.Server{
		Addr:    cfg.Listen,
		Handler: service.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("Player service listening", "addr", cfg.Listen)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func newLogger(level string, debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	switch {
	case debug:
		logger.SetLevel(log.DebugLevel)
	default:
		if parsed, err := log.ParseLevel(level); err == nil {
			logger.SetLevel(parsed)
		}
	}
	return logger
}
