package main

import (
	"context"
	"os"
	"time"

	"bankfile/internal/amqp"
	"bankfile/internal/cli"
	gsheet "bankfile/internal/sheets/google"
	"bankfile/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting bankfile-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.AMQPURL == "" {
		logger.Error("Worker requires AMQP_URL")
		os.Exit(1)
	}
	if cfg.GoogleSpreadsheetID == "" {
		logger.Error("Worker requires GOOGLE_SPREADSHEET_ID for the alert log")
		os.Exit(1)
	}

	sheetsClient, err := gsheet.NewFromEnv(context.Background())
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", "error", err)
		os.Exit(1)
	}
	logger.Info("Google Sheets client initialized",
		"spreadsheet_id", cfg.GoogleSpreadsheetID,
		"alert_sheet", cfg.AlertSheetName)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}

	alertWorker := worker.NewAlertWorker(sheetsClient)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		if err := amqpClient.Close(); err != nil {
			logger.Error("AMQP close failed", "error", err)
		}
	})

	go func() {
		if err := amqpClient.ConsumeChargeAlerts(ctx, alertWorker.HandleAlertMessage); err != nil {
			if err != context.Canceled {
				logger.Error("Alert consumption failed", "error", err)
				os.Exit(1)
			}
		}
	}()

	logger.Info("Worker ready, consuming charge alerts", "queue", cfg.AMQPQueue)
	cli.WaitForShutdown(ctx, done)
}
