package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Storage keys for the persisted token pair.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
)

// Store persists session values on the local filesystem. It is the
// CLI's stand-in for browser-local durable storage: string values under
// fixed keys, surviving across invocations.
type Store struct {
	baseDir string
}

type storeConfig struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// NewStore creates a session store.
// If baseDir is empty, uses ~/.homeharbor/session/
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".homeharbor", "session")
	}

	// Tokens are credentials, keep the directory private
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	store := &Store{baseDir: baseDir}

	if err := store.ensureConfig(); err != nil {
		return nil, err
	}

	log.Debug().Str("baseDir", baseDir).Msg("session store initialized")

	return store, nil
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) (string, error) {
	cfg, err := s.loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Values[key], nil
}

// Set durably stores value under key.
func (s *Store) Set(key, value string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	cfg.Values[key] = value
	return s.saveConfig(cfg)
}

// Clear removes the value stored under key. Clearing an absent key is
// not an error.
func (s *Store) Clear(key string) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}
	if _, ok := cfg.Values[key]; !ok {
		return nil
	}
	delete(cfg.Values, key)
	return s.saveConfig(cfg)
}

// ensureConfig creates an empty config if it doesn't exist.
func (s *Store) ensureConfig() error {
	configPath := filepath.Join(s.baseDir, "config.json")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	cfg := &storeConfig{
		Version: 1,
		Values:  make(map[string]string),
	}

	return s.saveConfig(cfg)
}

// loadConfig reads the config file.
func (s *Store) loadConfig() (*storeConfig, error) {
	configPath := filepath.Join(s.baseDir, "config.json")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg storeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Values == nil {
		cfg.Values = make(map[string]string)
	}

	return &cfg, nil
}

// saveConfig writes the config file atomically.
func (s *Store) saveConfig(cfg *storeConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to temp file first
	configPath := filepath.Join(s.baseDir, "config.json")
	tempPath := configPath + ".tmp"

	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, configPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
