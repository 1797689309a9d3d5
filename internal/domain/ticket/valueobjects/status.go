package valueobjects

import "fmt"

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusClosed     Status = "CLOSED"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
}

// Statuses form an unordered set: any status may move to any other.
// CLOSED is the only privileged value; reaching it triggers closure
// side effects in the lifecycle layer, not here.

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}

// PendingStatuses returns the statuses matched by the "pending" list
// filter.
func PendingStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress}
}

// CompletedStatuses returns the statuses matched by the "completed"
// list filter.
func CompletedStatuses() []Status {
	return []Status{StatusClosed}
}
