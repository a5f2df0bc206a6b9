package entities

// DisplayOption is one rendered poll option.
type DisplayOption struct {
	Label     string
	EmojiKey  string
	VoteCount int
}

// PollDisplay is what the presentation layer renders for an open poll.
type PollDisplay struct {
	Question string
	Options  []DisplayOption
}
