package launchapi

import (
	"errors"
	"fmt"
)

// GenericErrorMessage is shown when an error carries no usable description.
const GenericErrorMessage = "An error occurred"

// FetchError is the single failure kind of the launches API client. Network
// failures, non-2xx responses and undecodable bodies all surface as a
// FetchError; Message is the text meant for the user.
type FetchError struct {
	Op         string // launches, launch, stats, health
	Message    string
	StatusCode int   // 0 when no response was received
	Err        error // underlying cause, if any
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Message, e.StatusCode)
	default:
		return e.Message
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// UserMessage returns the user-facing description of err: a FetchError's
// Message, otherwise err's text, otherwise GenericErrorMessage.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericErrorMessage
}
