package config

import "errors"

var (
	errInitFailed = errors.New(
		"unable to initialise fast settings from the configuration file",
	)

	errInvalidDateRange = errors.New(
		"the end date must not be earlier than the start date",
	)

	errInvalidPeriod = errors.New(
		"please provide a valid time period",
	)

	errInvalidStartDate = errors.New(
		"please provide a valid start date",
	)
)
