package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"brettbot/internal/application"
	"brettbot/internal/config"
	"brettbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	handler  *Handler
	pollUC   *application.PollService
	activity *application.ActivityScheduler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, pollRepo output.PollRepository, holidays output.HolidayProvider, translator output.T) *Bot {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Creating the Discord session failed:", err)
	}
	s.Identify.Intents |= discordgo.IntentGuildMessageReactions | discordgo.IntentGuildMessages

	publisher := NewPublisher(s)
	voteUC := application.NewVoteService(pollRepo)
	pollUC := application.NewPollService(pollRepo, voteUC, publisher, holidays, cfg.Settings.QuestionText)
	activity := application.NewActivityScheduler(NewStatusSetter(s), cfg.Settings.Games, cfg.Settings.ActivityInterval())
	handler := NewHandler(pollUC, translator, cfg.Settings.StripClosedReactions)

	bot := &Bot{
		session:  s,
		config:   cfg,
		handler:  handler,
		pollUC:   pollUC,
		activity: activity,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		b.handler.HandleReactionAdd(s, r)
	})
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
		b.handler.HandleReactionRemove(s, r)
	})
	b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageDelete) {
		b.handler.HandleMessageDelete(s, m)
	})
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case createCommandName:
		b.handler.HandleCreateCommand(s, i)
	case closeCommandName:
		b.handler.HandleCloseCommand(s, i)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening the session failed: %w", err)
	}
	defer b.session.Close()

	closePermissions := int64(discordgo.PermissionManageMessages)
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        createCommandName,
			Description: "Starte eine Termin-Umfrage für die nächste Woche",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "start",
					Description: "Erster Tag des Zeitraums (TT.MM.JJJJ, Standard: nächster Montag)",
					Required:    false,
				},
			},
		},
		{
			Name:                     closeCommandName,
			Type:                     discordgo.MessageApplicationCommand,
			DefaultMemberPermissions: &closePermissions,
		},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Registering command %s failed: %v", cmd.Name, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stored polls are the source of truth after a restart; nothing is
	// regenerated from today's date.
	if _, err := b.pollUC.RehydrateOpenPolls(ctx); err != nil {
		log.Printf("⚠️ Rehydrating open polls failed: %v", err)
	}

	go b.activity.Run(ctx)

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
