package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/rl1809/food-order/internal/client"
	"github.com/rl1809/food-order/internal/config"
	"github.com/rl1809/food-order/internal/storefront"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := logrus.New()
	log.SetLevel(cfg.Log.Level)
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shop := storefront.New(client.New(cfg.Client.APIURL, nil), log)
	if err := shop.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("storefront: %v", err)
	}
}
