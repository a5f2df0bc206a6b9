package domain

// Poll status values as persisted.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)
