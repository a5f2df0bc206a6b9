package discord

import (
	"brettbot/internal/ports/input"
	"brettbot/internal/ports/output"
)

// Handler handles Discord interactions and gateway events using use cases.
type Handler struct {
	pollUseCase input.PollUseCase
	translator  output.T
	// stripClosedReactions controls whether a reaction targeting a closed
	// poll is removed from the message again.
	stripClosedReactions bool
}

// NewHandler creates a Handler.
func NewHandler(pollUseCase input.PollUseCase, translator output.T, stripClosedReactions bool) *Handler {
	return &Handler{
		pollUseCase:          pollUseCase,
		translator:           translator,
		stripClosedReactions: stripClosedReactions,
	}
}
