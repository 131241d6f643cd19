package reports

import "errors"

var ErrUnknownFormat = errors.New("unknown report format")
