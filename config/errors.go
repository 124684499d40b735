package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLogFormat           = errors.New("unknown log_format (must be 'plain' or 'json')")
	ErrUnknownOutput              = errors.New("unknown output (must be 'text' or 'json')")
	ErrEmptyHost                  = errors.New("host can't be empty")
	ErrNegativeTimeout            = errors.New("timeout can't be negative")
	ErrNonPositivePollInterval    = errors.New("poll_interval must be positive")
	ErrNegativeMaxOpenConnections = errors.New("max_open_connections can't be negative")
)

// ErrInSection is returned if validate basic does not pass for any underlying config service.
type ErrInSection struct {
	Err     error
	Section string
}

func (e ErrInSection) Error() string {
	return fmt.Sprintf("error in [%s] section: %s", e.Section, e.Err.Error())
}

func (e ErrInSection) Unwrap() error {
	return e.Err
}

// ErrUnknownNetwork is returned for a network other than mainnet or testnet.
type ErrUnknownNetwork struct {
	Name string
}

func (e ErrUnknownNetwork) Error() string {
	return fmt.Sprintf("unknown network %q (must be 'mainnet' or 'testnet')", e.Name)
}

type ErrInvalidPort struct {
	Port int
}

func (e ErrInvalidPort) Error() string {
	return fmt.Sprintf("port %d out of range [0, 65535]", e.Port)
}
