package store

import "errors"

var (
	ErrUnknownDriver   = errors.New("unknown source driver")
	ErrMalformedRecord = errors.New("malformed transaction record")
	ErrEmptySnapshot   = errors.New("no transactions to import")
)
