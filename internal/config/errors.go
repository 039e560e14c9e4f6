package config

import "errors"

var (
	errNoBaseURL = errors.New(
		"api.base_url must be set to the attendance service URL",
	)

	errInvalidTimeout = errors.New(
		"api.timeout_seconds must be zero or greater",
	)
)
