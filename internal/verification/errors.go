package verification

import (
	"fmt"

	"github.com/pkg/errors"
)

type Reason string

const (
	ReasonTimedOut Reason = "timed out"
	ReasonFailed   Reason = "failed"
)

const (
	timedOutMessage = "Validation timed out waiting for application to start. " +
		"Please consider increasing the deployment timeout."
	failedMessage = "Deployment has failed"
)

// DeploymentError is the single error kind returned when a deployment could
// not be confirmed. Reason tells a timeout apart from a reported failure.
type DeploymentError struct {
	Reason      Reason
	Application string
	Target      string
	// Detail is the last backend status or probe description, if any.
	Detail string
	Err    error
}

func (e *DeploymentError) Error() string {
	msg := failedMessage
	if e.Reason == ReasonTimedOut {
		msg = timedOutMessage
	}

	if e.Application != "" {
		msg = fmt.Sprintf("%s (application=%s, target=%s)", msg, e.Application, e.Target)
	}

	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}

	return msg
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}

func NewTimeoutError(application, target, detail string, err error) *DeploymentError {
	return &DeploymentError{
		Reason:      ReasonTimedOut,
		Application: application,
		Target:      target,
		Detail:      detail,
		Err:         err,
	}
}

func NewFailureError(application, target, detail string) *DeploymentError {
	return &DeploymentError{
		Reason:      ReasonFailed,
		Application: application,
		Target:      target,
		Detail:      detail,
	}
}

// IsTimeout reports whether err is a DeploymentError caused by a timeout or an interruption.
func IsTimeout(err error) bool {
	var de *DeploymentError
	return errors.As(err, &de) && de.Reason == ReasonTimedOut
}

// IsFailure reports whether err is a DeploymentError caused by a failure reported by the target.
func IsFailure(err error) bool {
	var de *DeploymentError
	return errors.As(err, &de) && de.Reason == ReasonFailed
}
