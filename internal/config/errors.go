package config

import "errors"

var (
	ErrInvalidPostsConfigs = errors.New("invalid posts client configs")
)
