package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("GUILD_ID", "123456789")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("CONFIG_PATH", writeSettings(t, `games = ["Schafkopf"]`))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Settings.ActivityIntervalMinutes != 30 {
		t.Errorf("activity interval = %d, want default 30", cfg.Settings.ActivityIntervalMinutes)
	}
	if !strings.Contains(cfg.Settings.HolidayAPIURL, "feiertage-api.de") {
		t.Errorf("holiday url = %q, want default", cfg.Settings.HolidayAPIURL)
	}
	if cfg.Settings.DefaultLocale != "de" {
		t.Errorf("locale = %q, want de", cfg.Settings.DefaultLocale)
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("migrations path = %q", cfg.MigrationsPath)
	}
	if cfg.Settings.StripClosedReactions {
		t.Error("strip flag should default to false")
	}
}

func TestLoadParsesSettings(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("GUILD_ID", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/brettbot_test?sslmode=disable")
	t.Setenv("CONFIG_PATH", writeSettings(t, `
question_text = "Welche Tage (KW{kw})?"
activity_interval_minutes = 10
strip_closed_reactions = true
games = ["Schafkopf", "Codenames"]
`))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Settings.QuestionText != "Welche Tage (KW{kw})?" {
		t.Errorf("question = %q", cfg.Settings.QuestionText)
	}
	if got := cfg.Settings.ActivityInterval().Minutes(); got != 10 {
		t.Errorf("interval = %v minutes", got)
	}
	if !cfg.Settings.StripClosedReactions {
		t.Error("strip flag not parsed")
	}
	if len(cfg.Settings.Games) != 2 {
		t.Errorf("games = %v", cfg.Settings.Games)
	}
}

func TestLoadRejectsMissingToken(t *testing.T) {
	t.Setenv("TOKEN", "")
	t.Setenv("GUILD_ID", "")
	t.Setenv("CONFIG_PATH", writeSettings(t, ``))

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a missing token")
	}
}

func TestLoadRejectsNonNumericGuildID(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("GUILD_ID", "not-a-guild")
	t.Setenv("CONFIG_PATH", writeSettings(t, ``))

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-numeric guild id")
	}
}
