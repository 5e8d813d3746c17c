package custom_error

import "fmt"

type CustomError interface {
	Error() string
}

// NotFoundError means the register has no row for the requested asset ID.
type NotFoundError struct {
	resource string
	id       string
}

// RemoteError is any non-2xx answer from the register service.
type RemoteError struct {
	action string
	status int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.resource, e.id)
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("action %s failed with status %d", e.action, e.status)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{resource: resource, id: id}
}

// WrapRemoteStatus classifies a remote HTTP status into a typed error.
func WrapRemoteStatus(action string, status int) CustomError {
	switch status {
	case 404:
		return &NotFoundError{resource: "resource for action " + action, id: ""}
	default:
		return &RemoteError{action: action, status: status}
	}
}
