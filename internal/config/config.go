// Package config loads service configuration from an optional YAML file
// with environment-variable overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "15s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the underlying time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is everything the service needs at startup.
type Config struct {
	ListenAddr    string       `yaml:"listen_addr"`
	DatabasePath  string       `yaml:"database_path"`
	SessionSecret string       `yaml:"session_secret"`
	DefaultLocale string       `yaml:"default_locale"`
	Plan          PlanConfig   `yaml:"plan"`
	Survey        SurveyConfig `yaml:"survey"`
	ShutdownGrace Duration     `yaml:"shutdown_grace"`
}

// PlanConfig configures the plan-generation webhook.
type PlanConfig struct {
	WebhookURL string   `yaml:"webhook_url"`
	Timeout    Duration `yaml:"timeout"`
}

// SurveyConfig configures the diagnostic flow.
type SurveyConfig struct {
	// Autosave persists in-progress diagnostic answers so an interrupted
	// survey can resume. Off by default: partial answers are not kept
	// unless explicitly enabled.
	Autosave bool `yaml:"autosave"`
}

// Default returns the configuration used when no file and no overrides
// are present.
func Default() Config {
	return Config{
		ListenAddr:    ":8080",
		DatabasePath:  "talentlab.db",
		DefaultLocale: "en",
		Plan: PlanConfig{
			Timeout: Duration(15 * time.Second),
		},
		ShutdownGrace: Duration(10 * time.Second),
	}
}

// Load reads the YAML file at path (if path is empty or the file does
// not exist, defaults are used) and then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to defaults
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if cfg.Plan.Timeout <= 0 {
		cfg.Plan.Timeout = Duration(15 * time.Second)
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = Duration(10 * time.Second)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.ListenAddr = envOrDefault("TALENTLAB_ADDR", c.ListenAddr)
	c.DatabasePath = envOrDefault("TALENTLAB_DB", c.DatabasePath)
	c.SessionSecret = envOrDefault("TALENTLAB_SESSION_SECRET", c.SessionSecret)
	c.DefaultLocale = envOrDefault("TALENTLAB_LOCALE", c.DefaultLocale)
	c.Plan.WebhookURL = envOrDefault("TALENTLAB_PLAN_WEBHOOK", c.Plan.WebhookURL)
	if v := os.Getenv("TALENTLAB_SURVEY_AUTOSAVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Survey.Autosave = b
		}
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
