package request

type Status string

const (
	StatusPending  Status = "pending"
	StatusViewed   Status = "viewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// allowedTransitions is the single source of truth for the request state
// machine. Viewing is optional: pending may move straight to a terminal
// state. Terminal states have no outgoing edges.
var allowedTransitions = map[Status][]Status{
	StatusPending: {StatusViewed, StatusAccepted, StatusRejected},
	StatusViewed:  {StatusAccepted, StatusRejected},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusViewed, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Decidable reports whether an owner decision (accept/reject) is still open.
func (s Status) Decidable() bool {
	return s == StatusPending || s == StatusViewed
}
