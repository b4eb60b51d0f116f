package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rl1809/food-order/internal/client"
	"github.com/rl1809/food-order/internal/config"
	"github.com/rl1809/food-order/internal/core/domain"
)

func main() {
	totalRequests := flag.Int("n", 50, "number of orders to submit")
	concurrency := flag.Int("c", 10, "concurrent submitters")
	seed := flag.Bool("seed", false, "reseed the catalog first")
	flag.Parse()

	if err := validateFlags(*totalRequests, *concurrency); err != nil {
		logrus.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	api := client.New(cfg.Client.APIURL, nil)

	if *seed {
		if _, err := api.Seed(ctx); err != nil {
			logrus.Fatalf("failed to seed catalog: %v", err)
		}
	}

	menu, err := api.ListFood(ctx)
	if err != nil {
		logrus.Fatalf("failed to load menu: %v", err)
	}
	if len(menu) == 0 {
		logrus.Fatal("menu is empty, run with -seed")
	}

	before, err := api.ListOrders(ctx)
	if err != nil {
		logrus.Fatalf("failed to list orders: %v", err)
	}

	// Counters
	var successCount atomic.Int32
	var failCount atomic.Int32
	var ids sync.Map

	jobs := make(chan int)
	var wg sync.WaitGroup
	start := time.Now()

	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// The same payload every time: the API has no idempotency
				// key, so each submission is a separate order.
				item := menu[i%len(menu)]
				res, err := api.PlaceOrder(ctx, []domain.OrderItem{{FoodID: item.ID, Quantity: 1}})
				if err != nil {
					failCount.Add(1)
					logrus.WithError(err).Debug("order failed")
					continue
				}
				successCount.Add(1)
				ids.Store(res.OrderID, struct{}{})
			}
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	after, err := api.ListOrders(ctx)
	if err != nil {
		logrus.Fatalf("failed to list orders: %v", err)
	}

	distinct := 0
	ids.Range(func(_, _ any) bool {
		distinct++
		return true
	})

	fmt.Println("========== LOAD TEST RESULTS ==========")
	fmt.Printf("Total Requests:   %d\n", *totalRequests)
	fmt.Printf("Successful:       %d\n", successCount.Load())
	fmt.Printf("Failed:           %d\n", failCount.Load())
	fmt.Printf("Distinct IDs:     %d\n", distinct)
	fmt.Printf("Orders Added:     %d\n", len(after)-len(before))
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("========================================")

	if int(successCount.Load()) == distinct && len(after)-len(before) >= distinct {
		fmt.Println("PASS: every accepted submission produced its own order")
	} else {
		fmt.Println("FAIL: accepted submissions and stored orders disagree")
	}
}

func validateFlags(totalRequests, concurrency int) error {
	if concurrency < 1 {
		return errors.New("-c must be at least 1")
	}
	if totalRequests < 0 {
		return errors.New("-n must not be negative")
	}
	return nil
}
