package amqp

import (
	"encoding/json"
	"time"

	"bankfile/internal/core"
)

// ChargeAlertMessage carries one flagged suspicious charge. It is
// self-contained so the worker can append it to the alert log without
// another lookup.
type ChargeAlertMessage struct {
	Date        string    `json:"date"` // YYYY-MM-DD
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Account     string    `json:"account"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewChargeAlertMessage builds an alert message from a flagged charge.
func NewChargeAlertMessage(t core.Transaction) *ChargeAlertMessage {
	return &ChargeAlertMessage{
		Date:        core.Day(t.Date).Format("2006-01-02"),
		Description: t.Description,
		Amount:      t.Amount.String(),
		Type:        string(t.Type),
		Category:    t.Category,
		Account:     t.Account,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ChargeAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChargeAlertMessageFromJSON creates a message from JSON bytes
func ChargeAlertMessageFromJSON(data []byte) (*ChargeAlertMessage, error) {
	var msg ChargeAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
