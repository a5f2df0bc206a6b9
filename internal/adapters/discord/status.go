package discord

import (
	"github.com/bwmarrin/discordgo"

	"brettbot/internal/ports/output"
)

var _ output.StatusSetter = (*StatusSetter)(nil)

// StatusSetter pushes the rotating activity to Discord presence.
type StatusSetter struct {
	session *discordgo.Session
}

func NewStatusSetter(session *discordgo.Session) *StatusSetter {
	return &StatusSetter{session: session}
}

func (s *StatusSetter) SetActivity(name string) error {
	return s.session.UpdateGameStatus(0, name)
}
