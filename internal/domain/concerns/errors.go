package concerns

import "errors"

var (
	ErrUnknownStatus = errors.New("unknown concern status")
	ErrUnknownFilter = errors.New("unknown concern filter")
)
