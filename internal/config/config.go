package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Transaction source
	DataSource   string // csv | sqlite
	CSVPath      string
	SQLiteDBPath string

	// AMQP (suspicious-charge alerts; empty URL disables alerting)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets export
	GoogleSpreadsheetID string
	ReportSheetPrefix   string
	AlertSheetName      string

	// Reports
	TopCategories int
}

func Load() *Config {
	cfg := &Config{
		DataSource:   getEnv("DATA_SOURCE", "csv"),
		CSVPath:      getEnv("CSV_PATH", "transactions.csv"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/bankfile.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "bankfile"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "suspicious_charges"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		ReportSheetPrefix:   getEnv("REPORT_SHEET_PREFIX", "Report"),
		AlertSheetName:      getEnv("ALERT_SHEET_NAME", "Alerts"),

		TopCategories: getEnvInt("TOP_CATEGORIES", 5),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data source
	validSources := []string{"csv", "sqlite"}
	isValidSource := false
	for _, source := range validSources {
		if c.DataSource == source {
			isValidSource = true
			break
		}
	}
	if !isValidSource {
		errors = append(errors, fmt.Sprintf("invalid data source '%s': must be one of %v", c.DataSource, validSources))
	}

	// Validate CSV path if source is csv
	if c.DataSource == "csv" && c.CSVPath == "" {
		errors = append(errors, "CSV path cannot be empty when using csv data source")
	}

	// Validate SQLite configuration if source is sqlite
	if c.DataSource == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite data source")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Validate report configuration
	if c.TopCategories < 1 {
		errors = append(errors, fmt.Sprintf("invalid top categories count %d: must be at least 1", c.TopCategories))
	} else if c.TopCategories > 100 {
		errors = append(errors, fmt.Sprintf("invalid top categories count %d: must be at most 100", c.TopCategories))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
