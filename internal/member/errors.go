// internal/member/errors.go
package member

import "errors"

var (
	// ErrPayloadConsumed is returned when a member's payload is read a second time
	ErrPayloadConsumed = errors.New("member payload already consumed")

	// ErrStaleMember is returned when reading a member after the decoder moved past it
	ErrStaleMember = errors.New("member is no longer current")

	// ErrDecoderClosed is returned by Next after Close
	ErrDecoderClosed = errors.New("decoder closed")
)
