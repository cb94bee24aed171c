// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Persistence backends selectable via PASSVAULT_BACKEND.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Backend         string
	CredentialsPath string
	SettingsPath    string
	DBPath          string
}

// Load reads configuration from environment variables and returns a validated
// Config. All variables are optional: PASSVAULT_BACKEND ("json" or "sqlite",
// default json), PASSVAULT_CREDENTIALS_PATH (credentials.json),
// PASSVAULT_SETTINGS_PATH (settings.json), PASSVAULT_DB_PATH (passvault.db,
// used only by the sqlite backend).
func Load() (*Config, error) {
	backend := BackendJSON
	if v, ok := os.LookupEnv("PASSVAULT_BACKEND"); ok {
		if v != BackendJSON && v != BackendSQLite {
			return nil, fmt.Errorf("PASSVAULT_BACKEND has unknown value %q: want %q or %q", v, BackendJSON, BackendSQLite)
		}
		backend = v
	}

	credentialsPath := "credentials.json"
	if v, ok := os.LookupEnv("PASSVAULT_CREDENTIALS_PATH"); ok {
		credentialsPath = v
	}

	settingsPath := "settings.json"
	if v, ok := os.LookupEnv("PASSVAULT_SETTINGS_PATH"); ok {
		settingsPath = v
	}

	dbPath := "passvault.db"
	if v, ok := os.LookupEnv("PASSVAULT_DB_PATH"); ok {
		dbPath = v
	}

	return &Config{
		Backend:         backend,
		CredentialsPath: credentialsPath,
		SettingsPath:    settingsPath,
		DBPath:          dbPath,
	}, nil
}
