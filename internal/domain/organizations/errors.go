package organizations

import "errors"

var ErrUnknownFilter = errors.New("unknown organization filter")
