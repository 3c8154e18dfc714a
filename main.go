package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	config "github.com/insightfinder/nimbus-agent/configs"
	"github.com/insightfinder/nimbus-agent/nimbus"
	"github.com/insightfinder/nimbus-agent/notifier"
	"github.com/insightfinder/nimbus-agent/worker"
	"github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("Starting Nimbus Agent...")

	configPath := flag.String("config", "configs/config.yaml", "path to the agent config file")
	dryRun := flag.Bool("dry-run", false, "log planned changes without calling Nimbus")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logging
	setupLogging(cfg.Agent.LogLevel)

	logrus.Info("Nimbus Agent starting...")
	logrus.Infof("Nimbus API: %s", cfg.Nimbus.BaseURL)
	logrus.Infof("Plan glob: %s", cfg.Agent.PlanGlob)

	// Initialize services
	nimbusService := nimbus.NewService(cfg.Nimbus)
	notifyService := notifier.NewService(cfg.Notify)

	// Create worker
	w := worker.NewWorker(cfg, nimbusService)
	if *dryRun {
		w.EnableDryRun()
	}

	// Graceful shutdown: a signal cancels the run after the in-flight
	// group finishes.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-quit
		logrus.Infof("Received %s, stopping after the current group", sig)
		cancel()
	}()

	report, runErr := w.Run(ctx)
	if runErr != nil {
		logrus.Errorf("Provisioning run did not complete: %v", runErr)
	}

	// Partial runs still produce a report and a notification, so the
	// notification is not tied to the run context.
	if _, err := w.WriteReport(report); err != nil {
		logrus.Errorf("Failed to write run report: %v", err)
	}
	if err := notifyService.SendReport(context.Background(), report); err != nil {
		logrus.Errorf("Failed to notify webhook: %v", err)
	}

	logrus.Info("Nimbus Agent stopped")
	if runErr != nil || report.ErrorCount() > 0 {
		os.Exit(1)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch level {
	case "DEBUG":
		logrus.SetLevel(logrus.DebugLevel)
	case "INFO":
		logrus.SetLevel(logrus.InfoLevel)
	case "WARN":
		logrus.SetLevel(logrus.WarnLevel)
	case "ERROR":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
