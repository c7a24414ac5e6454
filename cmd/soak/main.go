package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"synckit/internal/sim"
)

func main() {
	impl := flag.String("impl", sim.ImplChannel, "queue implementation: channel, cond or semaphore")
	capacity := flag.Int("capacity", 8, "queue capacity")
	producersStr := flag.String("producers", "alpha,beta,gamma,delta", "comma-separated producer IDs")
	consumers := flag.Int("consumers", 4, "consumer goroutines")
	items := flag.Int("items", 100000, "items per producer")
	interval := flag.Int64("interval", 1000, "heartbeat interval in consumption ticks")
	metricsAddr := flag.String("metrics.addr", "", "serve prometheus metrics on this address (empty disables)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	producers, err := sim.ParseProducerList(*producersStr)
	if err != nil {
		logger.Fatal("invalid producer list", zap.Error(err))
	}

	cfg := sim.Config{
		QueueImpl:   *impl,
		Capacity:    *capacity,
		Producers:   producers,
		Consumers:   *consumers,
		Items:       *items,
		Interval:    *interval,
		MetricsAddr: *metricsAddr,
	}

	runner, err := sim.NewRunner(cfg, logger)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(runner.Registry(), promhttp.HandlerOpts{}))
		go func() {
			logger.Info("serving metrics", zap.String("addr", cfg.MetricsAddr))
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := runner.Run(ctx)
	if err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
	dur := time.Since(start)

	fmt.Printf("Completed %d ops in %s (%.2f ops/s)\n",
		stats.Produced+stats.Consumed, dur,
		float64(stats.Produced+stats.Consumed)/dur.Seconds())
	if len(stats.DeadAtEnd) > 0 {
		logger.Warn("producers dead at end of run", zap.Strings("peers", stats.DeadAtEnd))
	}
}
