package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingConfig is returned by Validate when a required value is unset.
var ErrMissingConfig = errors.New("missing required configuration")

// Config holds all messdigest configuration.
type Config struct {
	Name string `yaml:"name"`

	// Complaint spreadsheet
	Sheets SheetsConfig `yaml:"sheets"`

	// Text-generation provider
	LLM LLMConfig `yaml:"llm"`

	// Outgoing mail
	Mail MailConfig `yaml:"mail"`

	// Run scheduling
	Run RunConfig `yaml:"run"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// RunConfig configures how a run determines "today".
type RunConfig struct {
	// Timezone is an IANA name; empty or "Local" uses the host zone.
	Timezone string `yaml:"timezone"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "messdigest",

		Sheets: SheetsConfig{
			CredentialsFile: "credentials.json",
			Columns:         "A:D",
			Timeout:         "30s",
		},

		LLM: LLMConfig{
			Provider: ProviderOpenAI,
			Timeout:  "120s",
		},

		Mail: MailConfig{
			Host:    "smtp.gmail.com",
			Port:    587,
			Timeout: "10s",
		},

		Run: RunConfig{
			Timezone: "Local",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file, then applies environment
// overrides. A missing file is not an error; defaults are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.LLM.applyModelDefault()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// Spreadsheet
	if id := env("SPREADSHEET_ID"); id != "" {
		c.Sheets.SpreadsheetID = id
	}
	if path := env("GOOGLE_CREDENTIALS_FILE"); path != "" {
		c.Sheets.CredentialsFile = path
	} else if path := env("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		c.Sheets.CredentialsFile = path
	}

	// LLM API key (later entries win)
	if key := env("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = ProviderGemini
	}
	if key := env("OPENAI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = ProviderOpenAI
	}
	if provider := env("DIGEST_LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = strings.ToLower(provider)
	}
	if model := env("DIGEST_LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	// Mail
	if user := env("EMAIL_USER"); user != "" {
		c.Mail.Username = user
	}
	if pass := env("EMAIL_APP_PASSWORD"); pass != "" {
		c.Mail.Password = pass
	}
	if to := env("TARGET_EMAIL"); to != "" {
		c.Mail.To = to
	}
	if host := env("SMTP_HOST"); host != "" {
		c.Mail.Host = host
	}
	if raw := env("SMTP_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			c.Mail.Port = port
		}
	}

	if tz := env("DIGEST_TIMEZONE"); tz != "" {
		c.Run.Timezone = tz
	}
	if level := env("DIGEST_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if raw := env("DIGEST_LOG_TRACE"); raw != "" {
		if trace, err := strconv.ParseBool(raw); err == nil {
			c.Logging.Trace = trace
		}
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var missing []string
	if c.Sheets.SpreadsheetID == "" {
		missing = append(missing, "SPREADSHEET_ID")
	}
	if c.Sheets.CredentialsFile == "" {
		missing = append(missing, "GOOGLE_CREDENTIALS_FILE")
	}
	if c.LLM.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY or GEMINI_API_KEY")
	}
	if c.Mail.Username == "" {
		missing = append(missing, "EMAIL_USER")
	}
	if c.Mail.Password == "" {
		missing = append(missing, "EMAIL_APP_PASSWORD")
	}
	if c.Mail.To == "" {
		missing = append(missing, "TARGET_EMAIL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if err := c.LLM.validateProvider(); err != nil {
		return err
	}
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Mail.Port)
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves Run.Timezone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Run.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}

// parseDuration parses raw, returning fallback when raw is empty or invalid.
func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
