package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MedicalAPIConfig points at the remote medical benefits API.
type MedicalAPIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// JWTConfig controls the tokens handed to the mobile client.
type JWTConfig struct {
	Secret     string `yaml:"secret"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// Config defines service configuration. Defaults are overridden by the yaml
// file named in PHARMA_CONFIG, then by individual env vars.
type Config struct {
	Port          string           `yaml:"port"`
	MedicalAPI    MedicalAPIConfig `yaml:"medical_api"`
	JWT           JWTConfig        `yaml:"jwt"`
	SessionsTable string           `yaml:"sessions_table"`
}

// Load builds the effective configuration.
func Load() (Config, error) {
	cfg := Config{
		Port: "8080",
		MedicalAPI: MedicalAPIConfig{
			BaseURL:        "https://medical-api-v1qr.onrender.com/api",
			TimeoutSeconds: 30,
		},
		JWT: JWTConfig{
			TTLMinutes: 12 * 60,
		},
		SessionsTable: "sessions",
	}

	if path := os.Getenv("PHARMA_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("MEDICAL_API_BASE_URL"); v != "" {
		cfg.MedicalAPI.BaseURL = v
	}
	if v := getenvInt("MEDICAL_API_TIMEOUT_SECONDS"); v > 0 {
		cfg.MedicalAPI.TimeoutSeconds = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := getenvInt("JWT_TTL_MINUTES"); v > 0 {
		cfg.JWT.TTLMinutes = v
	}
	if v := os.Getenv("SESSIONS_TABLE"); v != "" {
		cfg.SessionsTable = v
	}

	if cfg.MedicalAPI.BaseURL == "" {
		return cfg, errors.New("config: medical api base url required")
	}
	if cfg.JWT.Secret == "" {
		return cfg, errors.New("config: JWT_SECRET required")
	}
	return cfg, nil
}

func getenvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
