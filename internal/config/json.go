package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the JSON configuration file at path and unmarshals it into
// a fresh [StructuredConfig]. Field names follow the `json` tags declared on
// the config structs; durations use Go duration strings (e.g. "15m").
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	cfg := new(jsonConfig)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return cfg.toStructuredConfig(), nil
}

// jsonConfig mirrors StructuredConfig with string durations so that a JSON
// file can spell them as "15m" instead of nanosecond integers.
type jsonConfig struct {
	App struct {
		SecretKey       string `json:"secret_key"`
		Audience        string `json:"audience"`
		Environment     string `json:"environment"`
		BasicTokenTTL   string `json:"basic_token_ttl"`
		SessionTokenTTL string `json:"session_token_ttl"`
	} `json:"app"`
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string `json:"http_address"`
		RequestTimeout string `json:"request_timeout"`
	} `json:"server"`
	RateLimit struct {
		RPS   float64 `json:"rps"`
		Burst int     `json:"burst"`
	} `json:"rate_limit"`
}

func (j *jsonConfig) toStructuredConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			SecretKey:       j.App.SecretKey,
			Audience:        j.App.Audience,
			Environment:     j.App.Environment,
			BasicTokenTTL:   parseDuration(j.App.BasicTokenTTL),
			SessionTokenTTL: parseDuration(j.App.SessionTokenTTL),
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: parseDuration(j.Server.RequestTimeout),
		},
		RateLimit: RateLimit{
			RPS:   j.RateLimit.RPS,
			Burst: j.RateLimit.Burst,
		},
	}
	cfg.Storage.DB.DSN = j.Storage.DB.DSN

	return cfg
}
