// Package worker consumes suspicious-charge alerts off the queue and
// appends them to the shared alert log sheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bankfile/internal/amqp"
	applog "bankfile/internal/log"
	"bankfile/internal/sheets"
)

var alertHeader = []string{"Date", "Description", "Amount", "Type", "Category", "Account", "Detected At"}

// AlertWorker turns charge alert messages into alert log rows.
type AlertWorker struct {
	appender sheets.AlertAppender
}

func NewAlertWorker(appender sheets.AlertAppender) *AlertWorker {
	return &AlertWorker{appender: appender}
}

// HandleAlertMessage processes a single charge alert from AMQP. An
// append failure is returned so the message is redelivered.
func (w *AlertWorker) HandleAlertMessage(ctx context.Context, msg *amqp.ChargeAlertMessage) error {
	fields := applog.NewFields().
		WithComponent(applog.ComponentWorker).
		WithOperation(applog.OpAppend).
		WithCharge(msg.Description, msg.Amount, msg.Account)
	slog.InfoContext(ctx, "Processing charge alert", fields.ToSlice()...)

	ref, err := w.appender.AppendAlert(ctx, alertRow(msg))
	if err != nil {
		return fmt.Errorf("append alert: %w", err)
	}

	slog.InfoContext(ctx, "Logged charge alert",
		applog.FieldDescription, msg.Description,
		applog.FieldSheetsRef, ref)
	return nil
}

// AlertHeader is the column layout of the alert log sheet.
func AlertHeader() []string {
	out := make([]string, len(alertHeader))
	copy(out, alertHeader)
	return out
}

func alertRow(msg *amqp.ChargeAlertMessage) []string {
	return []string{
		msg.Date,
		msg.Description,
		msg.Amount,
		msg.Type,
		msg.Category,
		msg.Account,
		msg.Timestamp.Format(time.RFC3339),
	}
}
