package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"restaurant-orders/internal/configs"
	"restaurant-orders/internal/delivery/kafka"
	"restaurant-orders/internal/metrics"
	"restaurant-orders/internal/models"
	"restaurant-orders/internal/repository"
)

// backfill republishes every stored order as an order.snapshot event so a
// fresh consumer of the topic can catch up with the files on disk.
func main() {
	pendingToo := flag.Bool("pending", true, "also publish orders still awaiting payment")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall publish deadline")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	if err := cfg.ConfigureLogger(); err != nil {
		logrus.Fatalf("logger: %s", err)
	}
	logrus.Print("config loaded")

	brokers := cfg.KafkaBrokersSlice()
	if len(brokers) == 0 {
		logrus.Fatal("KAFKA_BROKERS is empty, nothing to publish to")
	}

	repo, err := repository.NewRepository(repository.Config{
		Root:         cfg.StorageRoot,
		PendingDir:   cfg.PendingDir,
		CompletedDir: cfg.OrdersDir,
	})
	if err != nil {
		logrus.Fatalf("open order store: %s", err)
	}

	orders, err := repo.Completed.List()
	if err != nil {
		logrus.Fatalf("list orders: %s", err)
	}
	if *pendingToo {
		pending, err := repo.Pending.List()
		if err != nil {
			logrus.Fatalf("list pending orders: %s", err)
		}
		orders = append(orders, pending...)
	}

	pub := kafka.NewPublisher(brokers, cfg.KafkaTopic)
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	failed := 0
	for _, o := range orders {
		err := pub.Publish(ctx, models.OrderEvent{
			Type:       models.EventOrderSnapshot,
			OccurredAt: time.Now().UTC(),
			Order:      o,
		})
		metrics.Events.WithLabelValues(string(models.EventOrderSnapshot), metrics.Result(err)).Inc()
		if err != nil {
			failed++
			logrus.WithError(err).WithField("order_id", o.OrderId).Error("publish failed")
		}
	}

	logrus.WithFields(logrus.Fields{
		"published": len(orders) - failed,
		"failed":    failed,
		"topic":     cfg.KafkaTopic,
	}).Print("backfill finished")
	if failed > 0 {
		logrus.Exit(1)
	}
}
