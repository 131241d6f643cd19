package media

import "errors"

var (
	ErrUploadFailed    = errors.New("file upload failed")
	ErrUnknownProvider = errors.New("unknown media provider")
)
