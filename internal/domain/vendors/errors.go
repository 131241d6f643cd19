package vendors

import "errors"

var ErrUnknownStatus = errors.New("unknown vendor status")
