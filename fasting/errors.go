package fasting

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when a command is not legal from
	// the record's current state. The record is rejected before any
	// field is touched, so it is always safe to retry or no-op.
	ErrInvalidTransition = errors.New(
		"command is not legal from the current session state",
	)

	// ErrRecordTerminal is the invalid-transition case for completed
	// and broken records, which accept no further commands.
	ErrRecordTerminal = fmt.Errorf(
		"%w: the session has reached a terminal state",
		ErrInvalidTransition,
	)

	// ErrInvalidDuration is returned when a session is started with a
	// non-positive planned duration.
	ErrInvalidDuration = errors.New(
		"the planned duration must be greater than zero",
	)

	// ErrInvalidProtocol is returned when a session is created with an
	// unknown fasting protocol.
	ErrInvalidProtocol = errors.New(
		"unknown fasting protocol",
	)
)
