package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrLoadConfig         = errors.New("load config failed")
	ErrMissingCredentials = errors.New("missing LINE credentials")
)

func missingCredentials(keys []string) error {
	return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(keys, ", "))
}

func loadError(stage string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrLoadConfig, stage, err)
}
