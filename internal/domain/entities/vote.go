package entities

// VoteAction is the direction of a reaction event.
type VoteAction string

const (
	VoteAdd    VoteAction = "add"
	VoteRemove VoteAction = "remove"
)

// VoteEvent is a transient reaction event; it is never persisted.
type VoteEvent struct {
	PollID  string
	UserID  string
	Ordinal int
	Action  VoteAction
}
