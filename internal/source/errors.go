package source

import "github.com/friendsofgo/errors"

var (
	ErrMalformedPayload = errors.New("malformed member payload")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrPayloadNotFound  = errors.New("member payload not found")
)
