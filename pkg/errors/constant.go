package errors

const (
	// MessageNotFound is the default message for 404.
	MessageNotFound = "Not found"
	// MessageBadRequest is the default message for 400.
	MessageBadRequest = "Bad request"
)
