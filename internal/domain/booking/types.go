package booking

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// allowedTransitions: reserved -> active -> completed along the calendar,
// cancellation from any non-terminal state. Completed and cancelled have
// no outgoing edges.
var allowedTransitions = map[Status][]Status{
	StatusReserved: {StatusActive, StatusCancelled},
	StatusActive:   {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Blocking reports whether a booking in this status holds its date range
// against other candidates. Completed bookings are history and cancelled
// ones freed the slot.
func (s Status) Blocking() bool {
	return s == StatusReserved || s == StatusActive
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BlockingStatuses is the filter used when loading the committed schedule
// of a support for overlap checks.
var BlockingStatuses = []Status{StatusReserved, StatusActive}
