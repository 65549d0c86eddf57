/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/suparena/shopstore"
	"github.com/suparena/shopstore/config"
	"github.com/suparena/shopstore/seed"
)

var (
	configFlag   = flag.String("config", "", "Path to a YAML config file")
	fixturesFlag = flag.String("fixtures", "fixtures.yaml", "Path to the YAML fixtures to apply")
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := shopstore.GetVersionInfo()
		fmt.Printf("shopseed version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shopseed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	fx, err := seed.Load(*fixturesFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := shopstore.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}

	report, err := seed.Apply(ctx, store, fx, logger)
	logger.Info("seed finished",
		zap.String("fixtures", *fixturesFlag),
		zap.Int("productsCreated", report.ProductsCreated),
		zap.Int("productsSkipped", report.ProductsSkipped),
		zap.Int("usersCreated", report.UsersCreated),
		zap.Int("usersSkipped", report.UsersSkipped),
		zap.Int("cartLines", report.CartLines),
	)
	return err
}
