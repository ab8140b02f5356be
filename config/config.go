// Package config collects the environment-driven knobs of the spider into an
// explicit object passed to each component at construction.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the optional settings.
const (
	DefaultWorksheetName = "URLS"
	DefaultURLsFile      = "urls.csv"
	DefaultOutputFile    = "output.csv"
	DefaultTimeout       = 20 * time.Second
	DefaultDelay         = 500 * time.Millisecond
)

// Config holds everything a run needs.
type Config struct {
	// UseSheets selects the Google Sheet provider and sink; otherwise the
	// local files are used for both.
	UseSheets       bool
	SpreadsheetID   string
	WorksheetName   string
	CredentialsFile string

	RequestTimeout time.Duration
	RequestDelay   time.Duration

	URLsFile   string
	OutputFile string
}

// Load reads the configuration from the environment, honoring a .env file
// when one is present.  Unset options fall back to their defaults; malformed
// numeric options are configuration errors and fail the run up front.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		WorksheetName:  DefaultWorksheetName,
		RequestTimeout: DefaultTimeout,
		RequestDelay:   DefaultDelay,
		URLsFile:       DefaultURLsFile,
		OutputFile:     DefaultOutputFile,
	}

	cfg.UseSheets = strings.EqualFold(os.Getenv("USE_SHEETS"), "true")
	cfg.SpreadsheetID = os.Getenv("SPREADSHEET_ID")
	cfg.CredentialsFile = os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")

	if name := os.Getenv("WORKSHEET_NAME"); name != "" {
		cfg.WorksheetName = name
	}
	if path := os.Getenv("URLS_FILE"); path != "" {
		cfg.URLsFile = path
	}
	if path := os.Getenv("OUTPUT_FILE"); path != "" {
		cfg.OutputFile = path
	}

	if raw := os.Getenv("REQUEST_TIMEOUT_SECS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("REQUEST_TIMEOUT_SECS is not an integer: %w", err)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}
	if raw := os.Getenv("REQUEST_DELAY_SECS"); raw != "" {
		secs, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("REQUEST_DELAY_SECS is not a number: %w", err)
		}
		cfg.RequestDelay = time.Duration(secs * float64(time.Second))
	}

	if cfg.UseSheets {
		if cfg.SpreadsheetID == "" {
			return nil, fmt.Errorf("USE_SHEETS is set but SPREADSHEET_ID is empty")
		}
		if cfg.CredentialsFile == "" {
			return nil, fmt.Errorf("USE_SHEETS is set but GOOGLE_SERVICE_ACCOUNT_JSON is empty")
		}
	}

	return cfg, nil
}
