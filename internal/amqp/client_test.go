package amqp

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bankfile/internal/core"
)

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},  // capped at 30s
		{10, 30 * time.Second}, // capped at 30s
		{40, 30 * time.Second}, // shift overflow still capped
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempt), func(t *testing.T) {
			result := exponentialBackoff(tt.attempt)
			if result != tt.expected {
				t.Errorf("exponentialBackoff(%d) = %v, want %v", tt.attempt, result, tt.expected)
			}
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "connection error",
			err:      errors.New("connection refused"),
			expected: true,
		},
		{
			name:     "closed connection error",
			err:      errors.New("connection closed"),
			expected: true,
		},
		{
			name:     "EOF error",
			err:      errors.New("unexpected EOF"),
			expected: true,
		},
		{
			name:     "broken pipe error",
			err:      errors.New("broken pipe"),
			expected: true,
		},
		{
			name:     "closed network connection error",
			err:      errors.New("use of closed network connection"),
			expected: true,
		},
		{
			name:     "other error",
			err:      errors.New("some other error"),
			expected: false,
		},
		{
			name:     "validation error",
			err:      errors.New("invalid input"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isConnectionError(tt.err)
			if result != tt.expected {
				t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestChargeAlertMessageRoundTrip(t *testing.T) {
	charge := core.Transaction{
		Date:        time.Date(2020, 4, 15, 0, 0, 0, 0, time.UTC),
		Description: "WIRE TRANSFER FEE",
		Amount:      decimal.RequireFromString("-4500"),
		Type:        core.Debit,
		Category:    "Fees",
		Account:     "Checking",
	}

	msg := NewChargeAlertMessage(charge)
	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ChargeAlertMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Date != "2020-04-15" {
		t.Errorf("date = %s, want 2020-04-15", got.Date)
	}
	if got.Description != charge.Description || got.Amount != "-4500" {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Type != "debit" || got.Account != "Checking" {
		t.Errorf("round trip lost type/account: %+v", got)
	}
}

func TestChargeAlertMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := ChargeAlertMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
