package authctl

import "errors"

var (
	// ErrNilTransport is returned when the controller is constructed
	// without a backend transport.
	ErrNilTransport = errors.New("authctl: nil transport")
	// ErrLoginRejected is returned by Login when the server responded and
	// refused the credentials (or sent a malformed success). The inline
	// error has already been shown through the binder.
	ErrLoginRejected = errors.New("authctl: login rejected")
)
