package chat

// Status tells the transport how a turn ended.
type Status string

const (
	StatusAnswered Status = "answered"
	StatusRefused  Status = "refused"
	StatusFailed   Status = "failed"
)

// TurnInput is one user message for a session.
type TurnInput struct {
	SessionID string
	Message   string
}

// TurnOutput is the reply shown to the user.
type TurnOutput struct {
	SessionID string
	Reply     string
	Status    Status
	Rule      string // filter rule that refused the input, if any
}
