package main

import (
	"context"
	"log"
	"os"

	"brettbot/internal/adapters/discord"
	"brettbot/internal/config"
	"brettbot/internal/infrastructure/database"
	"brettbot/internal/infrastructure/holiday"
	"brettbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization error: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	pollRepo := database.NewPollRepository(pool)
	holidays := holiday.NewClient(cfg.Settings.HolidayAPIURL)
	translator := i18n.NewTranslator(cfg.Settings.DefaultLocale)

	bot := discord.NewBot(cfg, pollRepo, holidays, translator)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Bot startup error: %v", err)
		os.Exit(1)
	}
}
