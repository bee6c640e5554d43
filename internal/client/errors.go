package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingClientID = errors.New("client id is required")
	ErrNoCommand       = errors.New("no command given")
)
