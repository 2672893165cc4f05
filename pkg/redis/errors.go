package redis

import "errors"

var (
	ErrFailedToParseConnString = errors.New("redis.failed_to_parse_connection_string")
	ErrNotReady                = errors.New("redis.not_ready")
	ErrEmptyConnectionURL      = errors.New("redis.empty_connection_url")
	ErrHealthcheckFailed       = errors.New("redis.healthcheck_failed")
)
