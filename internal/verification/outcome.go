package verification

// Outcome is the normalised result of a single status query.
type Outcome int

const (
	// InProgress means the target is still working on the deployment.
	InProgress Outcome = iota
	// Success means the target reports the artifact as deployed and running.
	Success
	// Failure means the target reports a terminal failure. Polling stops.
	Failure
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "InProgress"
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further polling is needed.
func (o Outcome) Terminal() bool {
	return o == Success || o == Failure
}

// Status is what a Strategy observed on one poll.
type Status struct {
	Outcome Outcome
	// Message is the raw backend status, kept for logs and error messages.
	Message string
}

func InProgressStatus(message string) Status {
	return Status{Outcome: InProgress, Message: message}
}

func SuccessStatus(message string) Status {
	return Status{Outcome: Success, Message: message}
}

func FailureStatus(message string) Status {
	return Status{Outcome: Failure, Message: message}
}
