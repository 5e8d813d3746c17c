package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/roles"
)

// Config gathers everything the portal needs from the environment. Handlers
// and services receive it injected, nothing reads os.Getenv past startup.
type Config struct {
	ListenAddr  string
	SheetAPIURL string
	JWTSecret   string

	// AccessCodeHashes maps each role to the bcrypt hash of its shared
	// access code.
	AccessCodeHashes map[roles.Role]string

	// Direct Google Sheets access, used by the export command as a
	// fallback when the action service is down.
	SpreadsheetID string
	ReadRange     string

	RequestTimeout time.Duration
}

const defaultRequestTimeout = 15 * time.Second

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:     os.Getenv("APP_HOST"),
		SheetAPIURL:    os.Getenv("SHEET_API_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SpreadsheetID:  os.Getenv("ASSET_SPREADSHEET_ID"),
		ReadRange:      os.Getenv("ASSET_READ_RANGE"),
		RequestTimeout: defaultRequestTimeout,
		AccessCodeHashes: map[roles.Role]string{
			roles.Viewer: os.Getenv("ACCESS_CODE_HASH_VIEWER"),
			roles.Editor: os.Getenv("ACCESS_CODE_HASH_EDITOR"),
			roles.Admin:  os.Getenv("ACCESS_CODE_HASH_ADMIN"),
		},
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.ReadRange == "" {
		cfg.ReadRange = "A1:K5000"
	}
	if raw := os.Getenv("REQUEST_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS: %q", raw)
		}
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
	}

	if cfg.SheetAPIURL == "" {
		return nil, fmt.Errorf("SHEET_API_URL environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}
