package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config is everything the process needs, built once at startup and passed
// into the components explicitly. Secrets come from the environment, tunables
// from the TOML file.
type Config struct {
	Token          string
	GuildID        string
	DatabaseURL    string
	MigrationsPath string
	Settings       Settings
}

// Settings are the tunables from config.toml.
type Settings struct {
	QuestionText            string   `toml:"question_text"`
	HolidayAPIURL           string   `toml:"holiday_api_url"`
	Games                   []string `toml:"games"`
	ActivityIntervalMinutes int      `toml:"activity_interval_minutes"`
	StripClosedReactions    bool     `toml:"strip_closed_reactions"`
	DefaultLocale           string   `toml:"default_locale"`
}

// ActivityInterval returns the activity rotation interval.
func (s Settings) ActivityInterval() time.Duration {
	return time.Duration(s.ActivityIntervalMinutes) * time.Minute
}

// Load reads the environment (plus an optional .env) and the TOML settings
// file, then validates the result.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.toml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg.Settings); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the business rules to the loaded configuration and
// fills in defaults.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild id (digits only)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/brettbot?sslmode=disable"
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.MigrationsPath == "" {
		c.MigrationsPath = "migrations"
	}

	if strings.TrimSpace(c.Settings.QuestionText) == "" {
		c.Settings.QuestionText = "Welche Tage nächste Woche (KW{kw}) passen für euch?"
	}
	if strings.TrimSpace(c.Settings.HolidayAPIURL) == "" {
		c.Settings.HolidayAPIURL = "https://feiertage-api.de/api/?nur_land=BY"
	}
	if c.Settings.ActivityIntervalMinutes <= 0 {
		c.Settings.ActivityIntervalMinutes = 30
	}
	if c.Settings.DefaultLocale == "" {
		c.Settings.DefaultLocale = "de"
	}

	return nil
}
