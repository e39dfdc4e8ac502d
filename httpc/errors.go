package httpc

import "errors"

var (
	// ErrValidation covers requests rejected before any network I/O:
	// unsupported scheme, missing domain/IP, a content type without a
	// body, or an undecodable query string.
	ErrValidation = errors.New("httpc: invalid request")
	// ErrResolution covers domain lookup failures.
	ErrResolution = errors.New("httpc: domain resolution failed")
	// ErrTransport covers socket create, connect, send and recv failures.
	ErrTransport = errors.New("httpc: transport failure")
	// ErrDecode covers empty or malformed response buffers.
	ErrDecode = errors.New("httpc: failed to decode HTTP response")
)
